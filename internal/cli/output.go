package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case AuthResult:
		fmt.Printf("Signed in as %s\n", v.User.DisplayName)
		if v.User.Email != nil {
			fmt.Printf("  email: %s\n", *v.User.Email)
		}
		fmt.Printf("  id:    %s\n", v.User.ID)
		fmt.Printf("  score: %d\n", v.User.TotalScore)
	case ExampleResult:
		if v.Result.German != "" {
			fmt.Println(v.Result.German)
		}
		if v.Result.Translation != "" {
			fmt.Println(v.Result.Translation)
		}
		if v.FromCache {
			fmt.Println("(cached)")
		}
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	default:
		o.printJSON(data)
	}
}

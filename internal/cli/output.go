package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// printJSON renders a result as indented JSON on stdout
func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to render output:", err)
		return
	}
	fmt.Println(string(data))
}

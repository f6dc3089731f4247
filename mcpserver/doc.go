// Package mcpserver provides the tool and prompt registry backing the MCP
// protocol handler. A Registry holds the server identity plus the ordered
// sets of registered tools and prompts; it is built once at startup through
// chained Add calls and treated as read-only afterwards, which makes its
// read path safe for concurrent request handling without locking.
//
// Tools declare their parameters as static Param descriptors; the registry
// synthesizes a JSON-schema-shaped input description from them at
// tools/list time. Alternatively, NewTool reflects the schema from a typed
// Go struct:
//
//	type WeatherArgs struct {
//	    City string `json:"city" jsonschema:"description=City name"`
//	}
//
//	reg := mcpserver.NewRegistry("weather", "1.0.0").
//	    AddTool(mcpserver.NewTool("GetWeather",
//	        func(ctx context.Context, a WeatherArgs) (string, error) {
//	            return "Sunny in " + a.City, nil
//	        },
//	        mcpserver.WithToolDescription("Report the current weather"),
//	    )).
//	    AddPrompt("You are a helpful weather assistant.")
package mcpserver

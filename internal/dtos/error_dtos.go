package dtos

// ValidationErrorDetail describes one schema violation. Path is the JSON
// path of the offending value, e.g. ["amenitiesIds", "1"].
type ValidationErrorDetail struct {
	Message string   `json:"message"`
	Field   string   `json:"field"`
	Path    []string `json:"path"`
	Type    string   `json:"type"`
}

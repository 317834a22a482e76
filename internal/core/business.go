package core

// BusinessRecord is one row of a city business list. Records are owned by
// the data loader and never mutated by the pipeline.
type BusinessRecord struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Website string `json:"website,omitempty"`
}

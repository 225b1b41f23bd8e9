package benchmark

// Result is the immutable snapshot produced by one benchmark collection step
type Result struct {
	Name     string                 `json:"name"`
	Metadata map[string]interface{} `json:"metadata"`
	Config   map[string]interface{} `json:"config"`
	Data     map[string]interface{} `json:"data"`
	Labels   map[string]string      `json:"labels"`
	Tag      string                 `json:"tag"`
}

// ToJSONable flattens the result into a single mapping for export. Sources
// merge in the order config, data, metadata, labels, with later sources
// winning on key collision; the "workload" key is then forced to the
// producing benchmark's name. Downstream aggregation relies on this exact
// precedence, do not reorder.
func (r Result) ToJSONable() map[string]interface{} {
	flat := make(map[string]interface{},
		len(r.Config)+len(r.Data)+len(r.Metadata)+len(r.Labels)+1)

	for k, v := range r.Config {
		flat[k] = v
	}
	for k, v := range r.Data {
		flat[k] = v
	}
	for k, v := range r.Metadata {
		flat[k] = v
	}
	for k, v := range r.Labels {
		flat[k] = v
	}
	flat["workload"] = r.Name

	return flat
}

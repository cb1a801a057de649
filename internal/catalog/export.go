package catalog

import (
	"gopkg.in/yaml.v3"
)

// SubTopicExport is one technique in the exported catalogue.
type SubTopicExport struct {
	Code    string      `yaml:"code"`
	Label   string      `yaml:"label"`
	Formula FormulaInfo `yaml:"formula"`
}

// TopicExport is one topic in the exported catalogue.
type TopicExport struct {
	TopicInfo `yaml:",inline"`
	Items     []SubTopicExport `yaml:"sub_topics"`
}

// Export returns the catalogue with the formula card of every technique.
func Export() []TopicExport {
	var out []TopicExport
	for _, t := range Topics() {
		te := TopicExport{TopicInfo: t}
		for _, s := range t.SubTopics {
			te.Items = append(te.Items, SubTopicExport{
				Code:    s.Code(),
				Label:   s.Label(),
				Formula: Formula(s),
			})
		}
		out = append(out, te)
	}
	return out
}

// ExportYAML serialises Export.
func ExportYAML() ([]byte, error) {
	return yaml.Marshal(Export())
}

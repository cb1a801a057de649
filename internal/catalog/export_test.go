package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestExportCoversEverySubTopic(t *testing.T) {
	var codes []string
	for _, te := range Export() {
		for _, s := range te.Items {
			codes = append(codes, s.Code)
		}
	}
	var want []string
	for _, s := range SubTopics() {
		want = append(want, s.Code())
	}
	if diff := cmp.Diff(want, codes); diff != "" {
		t.Errorf("exported codes mismatch (-want +got):\n%s", diff)
	}
}

func TestExportYAML(t *testing.T) {
	raw, err := ExportYAML()
	if err != nil {
		t.Fatalf("ExportYAML: %v", err)
	}

	var decoded []struct {
		Code      string `yaml:"code"`
		SubTopics []struct {
			Code    string `yaml:"code"`
			Formula struct {
				Latex string `yaml:"latex"`
			} `yaml:"formula"`
		} `yaml:"sub_topics"`
	}
	if err := yaml.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded) != 4 {
		t.Fatalf("expected 4 topics, got %d", len(decoded))
	}
	if decoded[3].Code != "INTEGRAL" {
		t.Errorf("expected INTEGRAL last, got %q", decoded[3].Code)
	}
	first := decoded[0].SubTopics[0]
	if first.Code != "SYS_ALGEBRA" || first.Formula.Latex == "" {
		t.Errorf("unexpected first sub-topic: %+v", first)
	}
}

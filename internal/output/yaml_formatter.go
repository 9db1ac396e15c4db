package output

import (
	"github.com/rpgo/sip-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter serializes the plan comparison as YAML.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(results *domain.PlanComparison) ([]byte, error) {
	return yaml.Marshal(results)
}

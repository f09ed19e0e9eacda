// Package skillgap maps missing skills to remediation resources from the
// learning catalog.
package skillgap

import (
	"fmt"
	"strings"

	"github.com/jonathan/candidate-matcher/internal/catalog"
	"github.com/jonathan/candidate-matcher/internal/types"
)

// Advisor builds learning plans from the catalog's resource listings.
type Advisor struct {
	resources map[string]map[string][]catalog.Resource
}

// NewAdvisor creates an Advisor backed by the given catalog.
func NewAdvisor(cat *catalog.Catalog) *Advisor {
	return &Advisor{resources: cat.LearningResources}
}

// Plan returns learning resources for each missing skill at the given level.
// A skill or level absent from the catalog yields exactly one generic
// fallback entry referencing the skill by name.
func (a *Advisor) Plan(missingSkills []string, level string) []types.LearningResource {
	plan := make([]types.LearningResource, 0, len(missingSkills))

	for _, skill := range missingSkills {
		levels, known := a.resources[strings.ToLower(skill)]
		if known {
			if resources, ok := levels[level]; ok && len(resources) > 0 {
				for _, r := range resources {
					plan = append(plan, types.LearningResource{
						Skill:    skill,
						Level:    level,
						Name:     r.Name,
						Platform: r.Platform,
						Duration: r.Duration,
					})
				}
				continue
			}
		}

		plan = append(plan, types.LearningResource{
			Skill:    skill,
			Level:    level,
			Name:     fmt.Sprintf("%s Tutorial", skill),
			Platform: "YouTube/Google",
			Duration: "Varies",
		})
	}

	return plan
}

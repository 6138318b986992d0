package pathfmt

import (
	"fmt"
	"strings"

	"github.com/arcosphere-go/catalyst/recipe"
	"github.com/arcosphere-go/catalyst/schedule"
	"github.com/arcosphere-go/catalyst/token"
)

// FormatStages renders stages in the canonical stage text format
// (spec.md §6), one line per stage numbered from 1:
//
//	<i>. [<reserved>] + [<working>] + [<released>] | <recipe> [// <recipe>]*
func FormatStages(stages schedule.Stages) string {
	var b strings.Builder
	for i, stage := range stages {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. [%s] + [%s] + [%s] | ", i+1,
			stage.Reserved.String(), stage.Working.String(), stage.Released.String())
		for j, r := range stage.Recipes {
			if j > 0 {
				b.WriteString(" // ")
			}
			b.WriteString(r.String())
		}
	}
	return b.String()
}

// ParseStages reads the canonical stage text format back into
// schedule.Stages. recipes resolves each stage's recipe texts to
// their catalog index, populating Stage.Indices; a recipe text with
// no match in recipes is an error.
func ParseStages(text string, recipes recipe.Set) (schedule.Stages, error) {
	var stages schedule.Stages
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		stage, err := parseStageLine(line, recipes)
		if err != nil {
			return nil, err
		}
		stages = append(stages, stage)
	}
	return stages, nil
}

func parseStageLine(line string, recipes recipe.Set) (schedule.Stage, error) {
	_, rest, ok := cut(line, ".")
	if !ok {
		return schedule.Stage{}, errf(line, "missing stage number")
	}

	reservedText, rest, ok := cut(rest, "+")
	if !ok {
		return schedule.Stage{}, errf(line, "missing reserved clause")
	}
	workingText, rest, ok := cut(rest, "+")
	if !ok {
		return schedule.Stage{}, errf(line, "missing working clause")
	}
	releasedText, recipesText, ok := cut(rest, "|")
	if !ok {
		return schedule.Stage{}, errf(line, "missing '|' before recipe list")
	}

	reserved, err := token.Parse(reservedText)
	if err != nil {
		return schedule.Stage{}, errf(reservedText, "invalid reserved multiset")
	}
	working, err := token.Parse(workingText)
	if err != nil {
		return schedule.Stage{}, errf(workingText, "invalid working multiset")
	}
	released, err := token.Parse(releasedText)
	if err != nil {
		return schedule.Stage{}, errf(releasedText, "invalid released multiset")
	}

	var stageRecipes []recipe.Recipe
	var indices []int
	for _, recipeText := range strings.Split(recipesText, "//") {
		recipeText = strings.TrimSpace(recipeText)
		if recipeText == "" {
			return schedule.Stage{}, errf(line, "empty recipe in stage")
		}
		r, err := parseRecipe(recipeText)
		if err != nil {
			return schedule.Stage{}, err
		}
		idx, ok := indexOf(recipes, r)
		if !ok {
			return schedule.Stage{}, errf(recipeText, "recipe not found in catalog")
		}
		stageRecipes = append(stageRecipes, recipes[idx])
		indices = append(indices, idx)
	}

	return schedule.Stage{
		Reserved: reserved,
		Working:  working,
		Released: released,
		Recipes:  stageRecipes,
		Indices:  indices,
	}, nil
}

package pathfmt

import (
	"strconv"
	"strings"

	"github.com/arcosphere-go/catalyst/recipe"
	"github.com/arcosphere-go/catalyst/search"
	"github.com/arcosphere-go/catalyst/token"
)

// ParsePath reads the canonical text format (spec.md §6):
//
//	<SOURCE> -> <TARGET> [xN] [+ <CATALYST>] => <step> [| <step>]*
//
// recipes resolves each "<inputs> -> <outputs>" recipe text to the
// RecipeIndex search.Path steps carry; a recipe text with no match in
// recipes is an error. A step listing more than one "//"-separated
// recipe is accepted and expanded into that many successive sequential
// Steps — pathfmt treats simultaneity as a display grouping, not a
// distinct path shape; schedule.Schedule re-derives genuine
// concurrency from a flat Path independently.
func ParsePath(text string, recipes recipe.Set) (source, target token.Multiset, repetitions int, catalyst token.Multiset, path search.Path, err error) {
	header, body, ok := cut(text, "=>")
	if !ok {
		return token.Multiset{}, token.Multiset{}, 0, token.Multiset{}, nil, errf(text, "missing '=>'")
	}

	sourceText, rest, ok := cut(header, "->")
	if !ok {
		return token.Multiset{}, token.Multiset{}, 0, token.Multiset{}, nil, errf(text, "missing source '->' target arrow")
	}
	source, err = token.Parse(strings.TrimSpace(sourceText))
	if err != nil {
		return token.Multiset{}, token.Multiset{}, 0, token.Multiset{}, nil, errf(sourceText, "invalid source multiset")
	}

	target, repetitions, catalyst, err = parseHeaderTail(rest)
	if err != nil {
		return token.Multiset{}, token.Multiset{}, 0, token.Multiset{}, nil, err
	}

	path, err = parseSteps(body, recipes)
	if err != nil {
		return token.Multiset{}, token.Multiset{}, 0, token.Multiset{}, nil, err
	}

	return source, target, repetitions, catalyst, path, nil
}

// FormatPath renders source, target, repetitions, catalyst and path in
// the canonical text format. repetitions of 1 omits the "xN" clause;
// an empty catalyst omits the "+ <CATALYST>" clause.
func FormatPath(source, target token.Multiset, repetitions int, catalyst token.Multiset, path search.Path) string {
	var b strings.Builder
	b.WriteString(source.String())
	b.WriteString(" -> ")
	b.WriteString(target.String())
	if repetitions > 1 {
		b.WriteString(" x")
		b.WriteString(strconv.Itoa(repetitions))
	}
	if !catalyst.IsEmpty() {
		b.WriteString(" + ")
		b.WriteString(catalyst.String())
	}
	b.WriteString(" => ")
	for i, step := range path {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(step.Recipe.String())
	}
	return b.String()
}

// parseHeaderTail parses "<TARGET> [xN] [+ <CATALYST>]".
func parseHeaderTail(s string) (target token.Multiset, repetitions int, catalyst token.Multiset, err error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return token.Multiset{}, 0, token.Multiset{}, errf(s, "missing target multiset")
	}

	target, err = token.Parse(fields[0])
	if err != nil {
		return token.Multiset{}, 0, token.Multiset{}, errf(fields[0], "invalid target multiset")
	}
	repetitions = 1

	i := 1
	if i < len(fields) && len(fields[i]) > 1 && (fields[i][0] == 'x' || fields[i][0] == 'X') {
		n, convErr := strconv.Atoi(fields[i][1:])
		if convErr != nil || n < 1 {
			return token.Multiset{}, 0, token.Multiset{}, errf(fields[i], "invalid repetition clause")
		}
		repetitions = n
		i++
	}

	if i < len(fields) && fields[i] == "+" {
		i++
		if i >= len(fields) {
			return token.Multiset{}, 0, token.Multiset{}, errf(s, "missing catalyst after '+'")
		}
		catalyst, err = token.Parse(fields[i])
		if err != nil {
			return token.Multiset{}, 0, token.Multiset{}, errf(fields[i], "invalid catalyst multiset")
		}
		i++
	}

	if i != len(fields) {
		return token.Multiset{}, 0, token.Multiset{}, errf(s, "unexpected trailing text")
	}

	return target, repetitions, catalyst, nil
}

// parseSteps splits body on "|" into steps, each step on "//" into
// recipe texts, resolving each against recipes.
func parseSteps(body string, recipes recipe.Set) (search.Path, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, nil
	}

	var path search.Path
	for _, stepText := range strings.Split(body, "|") {
		for _, recipeText := range strings.Split(stepText, "//") {
			recipeText = strings.TrimSpace(recipeText)
			if recipeText == "" {
				return nil, errf(body, "empty recipe in step")
			}
			r, err := parseRecipe(recipeText)
			if err != nil {
				return nil, err
			}
			idx, ok := indexOf(recipes, r)
			if !ok {
				return nil, errf(recipeText, "recipe not found in catalog")
			}
			path = append(path, search.Step{RecipeIndex: idx, Recipe: recipes[idx]})
		}
	}
	return path, nil
}

func parseRecipe(text string) (recipe.Recipe, error) {
	inputsText, outputsText, ok := cut(text, "->")
	if !ok {
		return recipe.Recipe{}, errf(text, "malformed recipe, missing '->'")
	}
	inputs, err := token.Parse(strings.TrimSpace(inputsText))
	if err != nil {
		return recipe.Recipe{}, errf(inputsText, "invalid recipe inputs")
	}
	outputs, err := token.Parse(strings.TrimSpace(outputsText))
	if err != nil {
		return recipe.Recipe{}, errf(outputsText, "invalid recipe outputs")
	}
	r, err := recipe.New(inputs, outputs)
	if err != nil {
		return recipe.Recipe{}, errf(text, "recipe is not a valid folding or inversion")
	}
	return r, nil
}

func indexOf(recipes recipe.Set, r recipe.Recipe) (int, bool) {
	for i, candidate := range recipes {
		if candidate.Equal(r) {
			return i, true
		}
	}
	return 0, false
}

// cut splits s at the first occurrence of sep, trimming surrounding
// whitespace from both halves.
func cut(s, sep string) (before, after string, found bool) {
	i := strings.Index(s, sep)
	if i < 0 {
		return "", "", false
	}
	return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+len(sep):]), true
}

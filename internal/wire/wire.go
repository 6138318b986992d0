package wire

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/arcosphere-go/catalyst/recipe"
	"github.com/arcosphere-go/catalyst/schedule"
	"github.com/arcosphere-go/catalyst/search"
	"github.com/arcosphere-go/catalyst/solve"
	"github.com/arcosphere-go/catalyst/token"
)

// multisetDTO is the wire shape of a token.Multiset: its 8 canonical
// counts. token.Multiset's own counts field is unexported, so every
// DTO in this package round-trips through CanonicalBytes/token.New
// rather than encoding the type directly.
type multisetDTO [8]byte

func toDTO(m token.Multiset) multisetDTO   { return multisetDTO(m.CanonicalBytes()) }
func fromDTO(d multisetDTO) token.Multiset { return token.New(d[:]...) }

type recipeDTO struct {
	Inputs  multisetDTO
	Outputs multisetDTO
}

func recipeToDTO(r recipe.Recipe) recipeDTO {
	return recipeDTO{Inputs: toDTO(r.Inputs), Outputs: toDTO(r.Outputs)}
}

func recipeFromDTO(d recipeDTO) recipe.Recipe {
	r, _ := recipe.New(fromDTO(d.Inputs), fromDTO(d.Outputs))
	return r
}

type stepDTO struct {
	RecipeIndex int
	Recipe      recipeDTO
}

type pathDTO []stepDTO

func pathToDTO(p search.Path) pathDTO {
	out := make(pathDTO, len(p))
	for i, s := range p {
		out[i] = stepDTO{RecipeIndex: s.RecipeIndex, Recipe: recipeToDTO(s.Recipe)}
	}
	return out
}

func pathFromDTO(d pathDTO) search.Path {
	out := make(search.Path, len(d))
	for i, s := range d {
		out[i] = search.Step{RecipeIndex: s.RecipeIndex, Recipe: recipeFromDTO(s.Recipe)}
	}
	return out
}

type catalystGroupDTO struct {
	Catalyst multisetDTO
	Paths    []pathDTO
}

type solutionDTO struct {
	Groups       []catalystGroupDTO
	CatalystSize int
	PathLength   int
}

// EncodeSolution renders sol as deterministic CBOR (core deterministic
// encoding — cbor.CoreDetEncOptions()), an alternate to pathfmt's text
// codec.
func EncodeSolution(sol *solve.Solution) ([]byte, error) {
	dto := solutionDTO{CatalystSize: sol.CatalystSize, PathLength: sol.PathLength}
	for _, g := range sol.Groups {
		paths := make([]pathDTO, len(g.Paths))
		for i, p := range g.Paths {
			paths[i] = pathToDTO(p)
		}
		dto.Groups = append(dto.Groups, catalystGroupDTO{Catalyst: toDTO(g.Catalyst), Paths: paths})
	}

	mode, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, err
	}
	return mode.Marshal(dto)
}

// DecodeSolution reverses EncodeSolution.
func DecodeSolution(b []byte) (*solve.Solution, error) {
	var dto solutionDTO
	if err := cbor.Unmarshal(b, &dto); err != nil {
		return nil, err
	}

	sol := &solve.Solution{CatalystSize: dto.CatalystSize, PathLength: dto.PathLength}
	for _, g := range dto.Groups {
		paths := make([]search.Path, len(g.Paths))
		for i, p := range g.Paths {
			paths[i] = pathFromDTO(p)
		}
		sol.Groups = append(sol.Groups, solve.CatalystGroup{Catalyst: fromDTO(g.Catalyst), Paths: paths})
	}
	return sol, nil
}

type stageDTO struct {
	Reserved multisetDTO
	Working  multisetDTO
	Released multisetDTO
	Recipes  []recipeDTO
	Indices  []int
}

// EncodeStages renders stages as deterministic CBOR.
func EncodeStages(stages schedule.Stages) ([]byte, error) {
	dto := make([]stageDTO, len(stages))
	for i, s := range stages {
		recipes := make([]recipeDTO, len(s.Recipes))
		for j, r := range s.Recipes {
			recipes[j] = recipeToDTO(r)
		}
		dto[i] = stageDTO{
			Reserved: toDTO(s.Reserved),
			Working:  toDTO(s.Working),
			Released: toDTO(s.Released),
			Recipes:  recipes,
			Indices:  append([]int(nil), s.Indices...),
		}
	}

	mode, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, err
	}
	return mode.Marshal(dto)
}

// DecodeStages reverses EncodeStages.
func DecodeStages(b []byte) (schedule.Stages, error) {
	var dto []stageDTO
	if err := cbor.Unmarshal(b, &dto); err != nil {
		return nil, err
	}

	stages := make(schedule.Stages, len(dto))
	for i, s := range dto {
		recipes := make([]recipe.Recipe, len(s.Recipes))
		for j, r := range s.Recipes {
			recipes[j] = recipeFromDTO(r)
		}
		stages[i] = schedule.Stage{
			Reserved: fromDTO(s.Reserved),
			Working:  fromDTO(s.Working),
			Released: fromDTO(s.Released),
			Recipes:  recipes,
			Indices:  append([]int(nil), s.Indices...),
		}
	}
	return stages, nil
}

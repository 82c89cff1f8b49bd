// Package scenariohcl provides scenario definition file parsing.
// A scenario file carries named scenario blocks plus an optional
// generator block:
//
//	scenario "border-adjust" {
//	  tariff_percent   = 12.5
//	  shipping_cost    = 55
//	  incentive_amount = 30
//	  carbon_price     = 90
//	}
//
//	generator {
//	  start_year = 2018
//	  end_year   = 2032
//	  seed       = 42
//	}
package scenariohcl

import (
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"

	"steelcost/core/generator"
	"steelcost/core/types"
	"steelcost/internal/errors"
)

// NamedScenario is one scenario block from a file
type NamedScenario struct {
	// Name is the block label
	Name string

	// State is the decoded lever bundle
	State types.ScenarioState
}

// File is a fully parsed scenario definition file
type File struct {
	// Scenarios holds the scenario blocks in file order
	Scenarios []NamedScenario

	// Generator carries the generator block, if present
	Generator *generator.Config
}

// Scenario returns the named scenario, or the first one when name is
// empty
func (f *File) Scenario(name string) (NamedScenario, bool) {
	if name == "" && len(f.Scenarios) > 0 {
		return f.Scenarios[0], true
	}
	for _, s := range f.Scenarios {
		if s.Name == name {
			return s, true
		}
	}
	return NamedScenario{}, false
}

var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "scenario", LabelNames: []string{"name"}},
		{Type: "generator"},
	},
}

var scenarioSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "tariff_percent"},
		{Name: "shipping_cost"},
		{Name: "incentive_amount"},
		{Name: "carbon_price"},
	},
}

var generatorSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "start_year"},
		{Name: "end_year"},
		{Name: "seed"},
	},
}

// Load parses a scenario definition file from disk
func Load(path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeInput, "reading scenario file", err).WithContext("path", path)
	}
	return Parse(src, path)
}

// Parse parses scenario definition source. filename is used for
// diagnostics only.
func Parse(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing("parsing scenario file", diags).WithContext("path", filename)
	}

	content, diags := hclFile.Body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, errors.Parsing("reading scenario blocks", diags).WithContext("path", filename)
	}

	out := &File{}
	for _, block := range content.Blocks {
		switch block.Type {
		case "scenario":
			s, err := decodeScenario(block)
			if err != nil {
				return nil, err
			}
			out.Scenarios = append(out.Scenarios, s)
		case "generator":
			g, err := decodeGenerator(block)
			if err != nil {
				return nil, err
			}
			out.Generator = g
		}
	}

	if len(out.Scenarios) == 0 {
		return nil, errors.New(errors.TypeParsing, "scenario file defines no scenario blocks").WithContext("path", filename)
	}
	return out, nil
}

func decodeScenario(block *hcl.Block) (NamedScenario, error) {
	s := NamedScenario{Name: block.Labels[0]}

	content, diags := block.Body.Content(scenarioSchema)
	if diags.HasErrors() {
		return s, errors.Parsing("reading scenario attributes", diags).WithContext("scenario", s.Name)
	}

	fields := map[string]*decimal.Decimal{
		"tariff_percent":   &s.State.TariffPercent,
		"shipping_cost":    &s.State.ShippingCost,
		"incentive_amount": &s.State.IncentiveAmount,
		"carbon_price":     &s.State.CarbonPrice,
	}
	for name, dst := range fields {
		attr, ok := content.Attributes[name]
		if !ok {
			continue
		}
		d, err := decimalAttr(attr)
		if err != nil {
			return s, err
		}
		*dst = d
	}

	s.State = s.State.Clamp()
	return s, nil
}

func decodeGenerator(block *hcl.Block) (*generator.Config, error) {
	cfg := generator.DefaultConfig()

	content, diags := block.Body.Content(generatorSchema)
	if diags.HasErrors() {
		return nil, errors.Parsing("reading generator attributes", diags)
	}

	if attr, ok := content.Attributes["start_year"]; ok {
		n, err := intAttr(attr)
		if err != nil {
			return nil, err
		}
		cfg.StartYear = int(n)
	}
	if attr, ok := content.Attributes["end_year"]; ok {
		n, err := intAttr(attr)
		if err != nil {
			return nil, err
		}
		cfg.EndYear = int(n)
	}
	if attr, ok := content.Attributes["seed"]; ok {
		n, err := intAttr(attr)
		if err != nil {
			return nil, err
		}
		cfg.Seed = n
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// decimalAttr evaluates an attribute to a decimal. Values are never
// blindly passed through: unknown or non-numeric values are explicit
// parsing errors.
func decimalAttr(attr *hcl.Attribute) (decimal.Decimal, error) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return decimal.Zero, errors.Parsing("evaluating attribute", diags).WithContext("attribute", attr.Name)
	}
	if !val.IsKnown() || val.IsNull() || val.Type() != cty.Number {
		return decimal.Zero, errors.Newf(errors.TypeParsing, "attribute %s must be a number", attr.Name)
	}
	rat, _ := val.AsBigFloat().Rat(nil)
	if rat == nil {
		return decimal.Zero, errors.Newf(errors.TypeParsing, "attribute %s is not finite", attr.Name)
	}
	return decimal.NewFromBigRat(rat, 6), nil
}

func intAttr(attr *hcl.Attribute) (int64, error) {
	d, err := decimalAttr(attr)
	if err != nil {
		return 0, err
	}
	if !d.IsInteger() {
		return 0, errors.Newf(errors.TypeParsing, "attribute %s must be an integer", attr.Name)
	}
	return d.IntPart(), nil
}

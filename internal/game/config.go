package game

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// RulesFile is an optional HCL file describing a table rule set, layered
// under the command-line flags. Example:
//
//	table "downtown" {
//	  min_bet            = 25
//	  payout             = 1.2
//	  num_decks          = 2
//	  hit_soft_seventeen = true
//	}
type RulesFile struct {
	Tables []TableRules `hcl:"table,block"`
}

// TableRules holds the overridable rule attributes for one table.
// Pointer fields distinguish "not set" from an explicit zero.
type TableRules struct {
	Name             string   `hcl:"name,label"`
	MinBet           *int     `hcl:"min_bet,optional"`
	Payout           *float64 `hcl:"payout,optional"`
	NumDecks         *int     `hcl:"num_decks,optional"`
	ShoeMinPercent   *float64 `hcl:"shoe_min_percent,optional"`
	HitSoftSeventeen *bool    `hcl:"hit_soft_seventeen,optional"`
	DoubleAfterSplit *bool    `hcl:"double_after_split,optional"`
	LateSurrender    *bool    `hcl:"late_surrender,optional"`
	MaxSplit         *int     `hcl:"max_split,optional"`
}

// LoadRules parses an HCL rules file.
func LoadRules(filename string) (*RulesFile, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing rules file: %s", diags.Error())
	}

	var rules RulesFile
	diags = gohcl.DecodeBody(file.Body, nil, &rules)
	if diags.HasErrors() {
		return nil, fmt.Errorf("decoding rules file: %s", diags.Error())
	}

	if len(rules.Tables) == 0 {
		return nil, fmt.Errorf("rules file %s defines no table block", filename)
	}
	return &rules, nil
}

// Options applies the named table's rules over the base options. An
// empty name selects the first table in the file.
func (r *RulesFile) Options(name string, base GameOptions) (GameOptions, error) {
	var table *TableRules
	if name == "" {
		table = &r.Tables[0]
	} else {
		for i := range r.Tables {
			if r.Tables[i].Name == name {
				table = &r.Tables[i]
				break
			}
		}
		if table == nil {
			return base, fmt.Errorf("rules file has no table %q", name)
		}
	}

	opts := base
	if table.MinBet != nil {
		opts.MinBet = *table.MinBet
	}
	if table.Payout != nil {
		opts.Payout = *table.Payout
	}
	if table.NumDecks != nil {
		opts.NumDecks = *table.NumDecks
	}
	if table.ShoeMinPercent != nil {
		opts.ShoeMinPercent = *table.ShoeMinPercent
	}
	if table.HitSoftSeventeen != nil {
		opts.HitSoftSeventeen = *table.HitSoftSeventeen
	}
	if table.DoubleAfterSplit != nil {
		opts.DoubleAfterSplit = *table.DoubleAfterSplit
	}
	if table.LateSurrender != nil {
		opts.LateSurrender = *table.LateSurrender
	}
	if table.MaxSplit != nil {
		opts.MaxSplit = *table.MaxSplit
	}
	return opts, opts.Validate()
}

package catalog

import (
	pkgerrors "github.com/angelmondragon/menucart/pkg/errors"
)

// Selection maps a category id to the option ids chosen in it. A missing
// category means nothing was chosen there.
type Selection map[string][]string

// Contains reports whether optionID is chosen in categoryID.
func (s Selection) Contains(categoryID, optionID string) bool {
	for _, id := range s[categoryID] {
		if id == optionID {
			return true
		}
	}
	return false
}

func (s Selection) Clone() Selection {
	out := make(Selection, len(s))
	for cat, ids := range s {
		out[cat] = append([]string(nil), ids...)
	}
	return out
}

// DefaultSelection returns the catalog defaults, with an entry for every category.
func DefaultSelection(p *Product) Selection {
	sel := make(Selection, len(p.Categories))
	for _, cat := range p.Categories {
		chosen := []string{}
		for _, opt := range cat.Options {
			if opt.Default {
				chosen = append(chosen, opt.ID)
			}
		}
		sel[cat.ID] = chosen
	}
	return sel
}

// ValidateSelection checks user input against the product definition.
func ValidateSelection(p *Product, s Selection) error {
	details := map[string]string{}
	for catID, ids := range s {
		cat, ok := p.Category(catID)
		if !ok {
			details[catID] = "unknown category"
			continue
		}
		seen := map[string]struct{}{}
		for _, id := range ids {
			if _, ok := cat.Option(id); !ok {
				details[catID] = "unknown option " + id
				break
			}
			if _, dup := seen[id]; dup {
				details[catID] = "duplicate option " + id
				break
			}
			seen[id] = struct{}{}
		}
		if _, failed := details[catID]; failed {
			continue
		}
		if cat.Type == SelectionSingle && len(ids) > 1 {
			details[catID] = "accepts a single option"
		}
	}
	if len(details) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid option selection").WithDetails(details)
	}
	return nil
}

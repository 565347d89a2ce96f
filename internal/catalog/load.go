package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	pkgerrors "github.com/angelmondragon/menucart/pkg/errors"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// selectionAliases maps the form-control names used by menu data onto selection types.
var selectionAliases = map[string]SelectionType{
	"single":     SelectionSingle,
	"radios":     SelectionSingle,
	"select":     SelectionSingle,
	"multi":      SelectionMulti,
	"checkboxes": SelectionMulti,
}

type document struct {
	Products productList `json:"products" yaml:"products" validate:"required,min=1,dive"`
}

// Products, categories and options may be written either as arrays of records
// carrying an id or as objects keyed by id. Keyed entries keep document order.
type (
	productList  = keyedList[productRecord, *productRecord]
	categoryList = keyedList[categoryRecord, *categoryRecord]
	optionList   = keyedList[optionRecord, *optionRecord]
)

// Display fields of menu data (description, images, class) are ignored.
type productRecord struct {
	ID     string       `json:"id" yaml:"id" validate:"required"`
	Name   string       `json:"name" yaml:"name" validate:"required"`
	Price  float64      `json:"price" yaml:"price" validate:"gte=0"`
	Params categoryList `json:"params" yaml:"params" validate:"dive"`
}

type categoryRecord struct {
	ID      string     `json:"id" yaml:"id" validate:"required"`
	Label   string     `json:"label" yaml:"label" validate:"required"`
	Type    string     `json:"type" yaml:"type" validate:"required,oneof=single multi radios checkboxes select"`
	Options optionList `json:"options" yaml:"options" validate:"required,min=1,dive"`
}

type optionRecord struct {
	ID      string  `json:"id" yaml:"id" validate:"required"`
	Label   string  `json:"label" yaml:"label" validate:"required"`
	Price   float64 `json:"price" yaml:"price" validate:"gte=0"`
	Default bool    `json:"default" yaml:"default"`
}

func (r *productRecord) assignKey(key string) error  { return assignKey(&r.ID, key) }
func (r *categoryRecord) assignKey(key string) error { return assignKey(&r.ID, key) }
func (r *optionRecord) assignKey(key string) error   { return assignKey(&r.ID, key) }

func assignKey(id *string, key string) error {
	if *id == "" {
		*id = key
		return nil
	}
	if *id != key {
		return fmt.Errorf("id %q does not match its key %q", *id, key)
	}
	return nil
}

type keyedRecord[T any] interface {
	*T
	assignKey(key string) error
}

type keyedList[T any, PT keyedRecord[T]] []T

func (l *keyedList[T, PT]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case bytes.Equal(trimmed, []byte("null")):
		*l = nil
		return nil
	case len(trimmed) > 0 && trimmed[0] == '[':
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		*l = items
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected an object or an array, got %v", tok)
	}
	items := []T{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)
		var item T
		if err := dec.Decode(&item); err != nil {
			return err
		}
		if err := PT(&item).assignKey(key); err != nil {
			return err
		}
		items = append(items, item)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*l = items
	return nil
}

func (l *keyedList[T, PT]) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var items []T
		if err := node.Decode(&items); err != nil {
			return err
		}
		*l = items
		return nil
	case yaml.MappingNode:
		items := make([]T, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			var item T
			if err := node.Content[i+1].Decode(&item); err != nil {
				return err
			}
			if err := PT(&item).assignKey(node.Content[i].Value); err != nil {
				return err
			}
			items = append(items, item)
		}
		*l = items
		return nil
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*l = nil
			return nil
		}
	}
	return fmt.Errorf("line %d: expected a mapping or a sequence", node.Line)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// Load reads a catalog file; .yaml/.yml files are parsed as YAML, anything else as JSON.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeConfig, err, "read catalog")
	}
	format := FormatJSON
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = FormatYAML
	}
	return Parse(data, format)
}

func Parse(data []byte, format Format) (*Catalog, error) {
	var doc document
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConfig, err, "decode yaml catalog")
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConfig, err, "decode json catalog")
		}
	default:
		return nil, pkgerrors.Newf(pkgerrors.CodeConfig, "unsupported catalog format %q", format)
	}

	if err := validate.Struct(doc); err != nil {
		return nil, formatValidationErrors(err)
	}
	if err := checkConsistency(doc); err != nil {
		return nil, err
	}

	products := make([]Product, 0, len(doc.Products))
	for _, rec := range doc.Products {
		products = append(products, rec.toProduct())
	}
	return New(products)
}

func (r productRecord) toProduct() Product {
	p := Product{
		ID:         r.ID,
		Name:       r.Name,
		BasePrice:  decimal.NewFromFloat(r.Price),
		Categories: make([]Category, 0, len(r.Params)),
	}
	for _, c := range r.Params {
		cat := Category{
			ID:      c.ID,
			Label:   c.Label,
			Type:    selectionAliases[strings.ToLower(c.Type)],
			Options: make([]Option, 0, len(c.Options)),
		}
		for _, o := range c.Options {
			cat.Options = append(cat.Options, Option{
				ID:      o.ID,
				Label:   o.Label,
				Price:   decimal.NewFromFloat(o.Price),
				Default: o.Default,
			})
		}
		p.Categories = append(p.Categories, cat)
	}
	return p
}

// checkConsistency covers the cross-field rules the struct tags cannot express.
func checkConsistency(doc document) error {
	details := map[string]string{}
	for _, p := range doc.Products {
		categories := map[string]struct{}{}
		for _, c := range p.Params {
			key := p.ID + "." + c.ID
			if _, dup := categories[c.ID]; dup {
				details[key] = "duplicate category id"
				continue
			}
			categories[c.ID] = struct{}{}

			options := map[string]struct{}{}
			defaults := 0
			for _, o := range c.Options {
				if _, dup := options[o.ID]; dup {
					details[key+"."+o.ID] = "duplicate option id"
				}
				options[o.ID] = struct{}{}
				if o.Default {
					defaults++
				}
			}
			if selectionAliases[strings.ToLower(c.Type)] == SelectionSingle && defaults > 1 {
				details[key] = "single-choice category has more than one default"
			}
		}
	}
	if len(details) > 0 {
		return pkgerrors.New(pkgerrors.CodeConfig, "inconsistent catalog").WithDetails(details)
	}
	return nil
}

func formatValidationErrors(err error) *pkgerrors.Error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		details := map[string]string{}
		for _, fieldErr := range errs {
			details[fieldErr.Namespace()] = validationMessage(fieldErr)
		}
		return pkgerrors.New(pkgerrors.CodeConfig, "invalid catalog").WithDetails(details)
	}
	return pkgerrors.Wrap(pkgerrors.CodeConfig, err, "invalid catalog")
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must have at least %s entries", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of %s", fe.Param())
	}
	return "is invalid"
}

// internal/charts/spec.go
package charts

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/xeipuuv/gojsonschema"

	"github.com/mwiater/mlmon/internal/binning"
)

// ErrInvalidSpec is returned for chart specifications that are malformed or
// miss a field their chart type needs.
var ErrInvalidSpec = errors.New("invalid chart spec")

// Type names a chart kind.
type Type string

// Supported chart types.
const (
	TypeHistogram             Type = "histogram"
	TypeCountPlot             Type = "countplot"
	TypeScatter               Type = "scatter"
	TypeScatterWithHistograms Type = "scatter_with_histograms"
	TypeTimeseries            Type = "timeseries"
	TypeClassificationMetrics Type = "classification_metrics"
	TypeRegressionMetrics     Type = "regression_metrics"
	TypeConfusionMatrix       Type = "confusion_matrix"
)

// Types lists every chart type in display order.
var Types = []Type{
	TypeHistogram,
	TypeCountPlot,
	TypeScatter,
	TypeScatterWithHistograms,
	TypeTimeseries,
	TypeClassificationMetrics,
	TypeRegressionMetrics,
	TypeConfusionMatrix,
}

// Spec is a chart request as stored by the monitoring backend.
type Spec struct {
	ChartType    Type     `json:"chart_type" validate:"required,oneof=histogram countplot scatter scatter_with_histograms timeseries classification_metrics regression_metrics confusion_matrix"`
	FirstColumn  string   `json:"first_column,omitempty" validate:"omitempty,max=256"`
	SecondColumn string   `json:"second_column,omitempty" validate:"omitempty,max=256"`
	BinMethod    string   `json:"bin_method,omitempty" validate:"omitempty,oneof=squareRoot sturges scott freedmanDiaconis fixedNumber"`
	BinNumber    int      `json:"bin_number,omitempty" validate:"omitempty,gte=2,lte=10000"`
	Metrics      []string `json:"metrics,omitempty" validate:"omitempty,dive,required"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// specSchema is the wire contract for a single chart spec. Optional fields
// may be null, as the backend serializes unset columns that way.
var specSchema = map[string]any{
	"type":     "object",
	"required": []string{"chart_type"},
	"properties": map[string]any{
		"chart_type":    map[string]any{"type": "string", "enum": typeNames()},
		"first_column":  map[string]any{"type": []string{"string", "null"}},
		"second_column": map[string]any{"type": []string{"string", "null"}},
		"bin_method":    map[string]any{"type": []string{"string", "null"}},
		"bin_number":    map[string]any{"type": []string{"integer", "null"}, "maximum": binning.MaxBins},
		"metrics": map[string]any{
			"type":  []string{"array", "null"},
			"items": map[string]any{"type": "string"},
		},
	},
}

func typeNames() []string {
	names := make([]string, len(Types))
	for i, t := range Types {
		names[i] = string(t)
	}
	return names
}

// ParseSpec checks data against the chart spec schema, decodes it and
// validates the result for its chart type.
func ParseSpec(data []byte) (Spec, error) {
	if err := checkSchema(gojsonschema.NewBytesLoader(data)); err != nil {
		return Spec{}, err
	}
	var spec Spec
	if err := json.Unmarshal(data, &spec); err != nil {
		return Spec{}, fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}
	if _, err := New(spec); err != nil {
		return Spec{}, err
	}
	return spec, nil
}

// ParseSpecs parses a JSON array of chart specs.
func ParseSpecs(data []byte) ([]Spec, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: expected a JSON array of specs: %v", ErrInvalidSpec, err)
	}
	specs := make([]Spec, 0, len(raw))
	for i, item := range raw {
		spec, err := ParseSpec(item)
		if err != nil {
			return nil, fmt.Errorf("spec %d: %w", i, err)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func checkSchema(document gojsonschema.JSONLoader) error {
	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(specSchema), document)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}
	if result.Valid() {
		return nil
	}
	var details []string
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidSpec, strings.Join(details, "; "))
}

// Validate checks the field-level rules of s. Rules that depend on the chart
// type are checked by New.
func (s Spec) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}
	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, fieldErrorMessage(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidSpec, strings.Join(messages, "; "))
}

func fieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation: %s", field, fe.Tag())
	}
}

func requireColumn(t Type, field, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s requires %s", ErrInvalidSpec, t, field)
	}
	return nil
}

// binSettings resolves bin_method and bin_number for histogram-bearing
// charts. bin_number is only read for fixedNumber.
func binSettings(s Spec) (binning.Rule, int, error) {
	if s.BinMethod == "" {
		return "", 0, fmt.Errorf("%w: %s requires bin_method", ErrInvalidSpec, s.ChartType)
	}
	rule, err := binning.ParseRule(s.BinMethod)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}
	if rule != binning.FixedNumber {
		return rule, 0, nil
	}
	if s.BinNumber < 2 || s.BinNumber > binning.MaxBins {
		return "", 0, fmt.Errorf("%w: bin_method %s requires bin_number between 2 and %d", ErrInvalidSpec, rule, binning.MaxBins)
	}
	return rule, s.BinNumber, nil
}

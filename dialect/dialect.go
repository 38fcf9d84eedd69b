// Package dialect defines the immutable feature-flag set that gates grammar
// productions and error messages across the parser. The parser never
// computes these flags itself; they are supplied by the caller as a preset
// or an override file.
//
// Built-in presets are shipped as embedded TOML documents and decoded with
// github.com/BurntSushi/toml, following the struct-tag/decode idiom the
// teacher parser used for its own manifest format (github.com/boergens/gotypst,
// syntax/package.go's PackageManifest). Project-local overrides are decoded
// from YAML with gopkg.in/yaml.v3, a sibling format for a sibling use case:
// built-in configuration vs. user-supplied configuration.
package dialect

import (
	"embed"
	"fmt"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

//go:embed presets/*.toml
var presetFS embed.FS

// Dialect is the immutable set of feature flags threaded through every
// context-sensitive parser production, grouped below by the grammar area
// each group gates.
type Dialect struct {
	Name string `toml:"name"`

	// Significant indentation / block syntax.
	AllowSignificantIndentation bool `toml:"allow_significant_indentation"`
	AllowBracelessBlocks        bool `toml:"allow_braceless_blocks"`

	// Quasiquote / macro.
	AllowUnquotes      bool `toml:"allow_unquotes"`
	AllowQuasiquotes   bool `toml:"allow_quasiquotes"`
	AllowMacroSplices  bool `toml:"allow_macro_splices"`

	// Types.
	AllowTypeLambdas           bool `toml:"allow_type_lambdas"`
	AllowDependentFunctionTypes bool `toml:"allow_dependent_function_types"`
	AllowMatchTypes            bool `toml:"allow_match_types"`
	AllowExistentialTypes      bool `toml:"allow_existential_types"`
	AllowContextFunctionTypes  bool `toml:"allow_context_function_types"`
	AllowIntersectionTypes     bool `toml:"allow_intersection_types"`

	// Given/using.
	AllowGivenUsing   bool `toml:"allow_given_using"`
	AllowExtensionMethods bool `toml:"allow_extension_methods"`
	AllowEnums        bool `toml:"allow_enums"`
	AllowOpaqueTypes  bool `toml:"allow_opaque_types"`
	AllowExportStatements bool `toml:"allow_export_statements"`
	AllowEndMarkers   bool `toml:"allow_end_markers"`
	AllowOpenModifier bool `toml:"allow_open_modifier"`

	// Patterns.
	AllowPostfixStarVarargSplices bool `toml:"allow_postfix_star_vararg_splices"`
	AllowUpperCasePatternVarBinding bool `toml:"allow_upper_case_pattern_var_binding"`

	// Expressions.
	AllowMatchAsOperator bool `toml:"allow_match_as_operator"`
	AllowXMLLiterals     bool `toml:"allow_xml_literals"`
	AllowInterpolation   bool `toml:"allow_interpolation"`
	AllowTrailingCommas  bool `toml:"allow_trailing_commas"`
	AllowNumericUnderscores bool `toml:"allow_numeric_underscores"`
	AllowPostfixOperators bool `toml:"allow_postfix_operators"`

	// Definitions / templates.
	AllowProcedureSyntax    bool `toml:"allow_procedure_syntax"`
	ProcedureSyntaxIsError  bool `toml:"procedure_syntax_is_error"`
	AllowSelfTypeAnnotations bool `toml:"allow_self_type_annotations"`
	AllowSecondaryCtors     bool `toml:"allow_secondary_ctors"`
	AllowTraitParameters    bool `toml:"allow_trait_parameters"`
	AllowValInForComprehension bool `toml:"allow_val_in_for_comprehension"`

	// Soft keywords (glossary): whether an identifier like `using`, `as`,
	// `derives`, `inline`, `opaque`, `open`, `transparent`, `erased` is
	// recognized contextually at all. Dialects that predate these features
	// keep the identifier available for ordinary use.
	SoftKeywords map[string]bool `toml:"soft_keywords"`
}

// Flag looks up a boolean field by name (e.g. "allowUnquotes"), so two
// dialects' flag sets can be compared generically without a hand-maintained
// list of field names.
func (d Dialect) Flag(name string) (bool, bool) {
	v := reflect.ValueOf(d)
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if strings.EqualFold(f.Name, name) && f.Type.Kind() == reflect.Bool {
			return v.Field(i).Bool(), true
		}
	}
	return false, false
}

// ExtendsStrictly reports whether d enables every flag other enables, plus
// at least one more: dialect D2 strictly extends D1 iff D2 enables strictly
// more flags.
func (d Dialect) ExtendsStrictly(other Dialect) bool {
	dv, ov := reflect.ValueOf(d), reflect.ValueOf(other)
	t := dv.Type()
	strictlyMore := false
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Type.Kind() != reflect.Bool {
			continue
		}
		db, ob := dv.Field(i).Bool(), ov.Field(i).Bool()
		if ob && !db {
			return false
		}
		if db && !ob {
			strictlyMore = true
		}
	}
	return strictlyMore
}

// IsSoftKeyword reports whether ident is recognized as a soft keyword under
// this dialect.
func (d Dialect) IsSoftKeyword(ident string) bool {
	return d.SoftKeywords[ident]
}

// Preset loads one of the built-in dialect presets (scala211, scala212,
// scala213, scala3, sbt, ammonite) from its embedded TOML document.
func Preset(name string) (Dialect, error) {
	data, err := presetFS.ReadFile("presets/" + name + ".toml")
	if err != nil {
		return Dialect{}, fmt.Errorf("no built-in dialect preset %q: %w", name, err)
	}
	var d Dialect
	if _, err := toml.Decode(string(data), &d); err != nil {
		return Dialect{}, fmt.Errorf("decoding dialect preset %q: %w", name, err)
	}
	return d, nil
}

// LoadOverride decodes a project-local YAML override document (conventionally
// `.scalaparse.yaml`) and applies it on top of base. Only fields present in
// the document are changed; everything else is inherited from base.
func LoadOverride(base Dialect, yamlDoc []byte) (Dialect, error) {
	var patch map[string]any
	if err := yaml.Unmarshal(yamlDoc, &patch); err != nil {
		return Dialect{}, fmt.Errorf("decoding dialect override: %w", err)
	}

	result := base
	v := reflect.ValueOf(&result).Elem()
	t := v.Type()
	for key, value := range patch {
		if key == "soft_keywords" {
			m, ok := value.(map[string]any)
			if !ok {
				continue
			}
			if result.SoftKeywords == nil {
				result.SoftKeywords = make(map[string]bool)
			}
			for k, v := range m {
				if b, ok := v.(bool); ok {
					result.SoftKeywords[k] = b
				}
			}
			continue
		}
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			tag := field.Tag.Get("toml")
			if tag == key && field.Type.Kind() == reflect.Bool {
				if b, ok := value.(bool); ok {
					v.Field(i).SetBool(b)
				}
			}
		}
	}
	return result, nil
}

// PresetNames lists the built-in dialects available via Preset.
func PresetNames() []string {
	return []string{"scala211", "scala212", "scala213", "scala3", "sbt", "ammonite"}
}

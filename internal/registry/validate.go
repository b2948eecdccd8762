package registry

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/vk/stepgrid/internal/ctxlog"
	"github.com/zclconf/go-cty/cty/gocty"
)

// ValidateRegistry checks every solver for a usable part table and an
// options struct whose tagged fields all map onto cty types.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, name := range r.Names() {
		solver := r.solvers[name]

		if len(solver.Parts) == 0 {
			errs = append(errs, fmt.Sprintf("solver '%s': no parts registered", name))
		}
		for _, n := range solver.PartNumbers() {
			if n < 1 {
				errs = append(errs, fmt.Sprintf("solver '%s': invalid part number %d", name, n))
			}
			if solver.Parts[n] == nil {
				errs = append(errs, fmt.Sprintf("solver '%s': part %d has a nil function", name, n))
			}
		}

		if solver.NewOptions == nil {
			continue
		}
		opts := solver.NewOptions()
		optsVal := reflect.ValueOf(opts)
		if optsVal.Kind() != reflect.Ptr || optsVal.IsNil() || optsVal.Elem().Kind() != reflect.Struct {
			errs = append(errs, fmt.Sprintf("solver '%s': NewOptions must return a non-nil pointer to a struct, got %T", name, opts))
			continue
		}

		optsType := optsVal.Elem().Type()
		seen := make(map[string]string)
		for i := 0; i < optsType.NumField(); i++ {
			field := optsType.Field(i)
			tagName := strings.Split(field.Tag.Get("cty"), ",")[0]
			if tagName == "" || tagName == "-" {
				continue
			}
			if !field.IsExported() {
				errs = append(errs, fmt.Sprintf("solver '%s': option '%s' is bound to unexported field %s", name, tagName, field.Name))
				continue
			}
			if prev, dup := seen[tagName]; dup {
				errs = append(errs, fmt.Sprintf("solver '%s': option '%s' is bound to both %s and %s", name, tagName, prev, field.Name))
				continue
			}
			seen[tagName] = field.Name

			if field.Type.Kind() == reflect.Interface {
				errs = append(errs, fmt.Sprintf("solver '%s', option '%s': interface field %s has no static type", name, tagName, field.Name))
				continue
			}
			ctyType, err := gocty.ImpliedType(reflect.Zero(field.Type).Interface())
			if err != nil {
				errs = append(errs, fmt.Sprintf("solver '%s', option '%s': could not imply cty type from Go field type %s: %v", name, tagName, field.Type, err))
				continue
			}
			logger.Debug("Validated solver option.", "solver", name, "option", tagName, "type", ctyType.FriendlyName())
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

package framework

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	"github.com/milvus-io/pilot/canon"
	"github.com/milvus-io/pilot/types"
)

var (
	contextType  = reflect.TypeOf((*context.Context)(nil)).Elem()
	cmdParamType = reflect.TypeOf((*CmdParam)(nil)).Elem()
	requestType  = reflect.TypeOf((*canon.Request)(nil))
	errorType    = reflect.TypeOf((*error)(nil)).Elem()
	resultType   = reflect.TypeOf((*ResultSet)(nil)).Elem()
)

// parseFunctionCommands builds a command spec for every method of state
// named like %Command with signature
//
//	func(ctx context.Context, p *SomeParam[, req *canon.Request]) [ResultSet,] [error]
func parseFunctionCommands(state any, registry *types.Registry) ([]canon.CommandSpec, error) {
	v := reflect.ValueOf(state)
	tp := v.Type()

	var specs []canon.CommandSpec
	for i := 0; i < v.NumMethod(); i++ {
		mt := tp.Method(i)

		// parse method like with pattern %Command
		if !strings.HasSuffix(mt.Name, "Command") {
			continue
		}

		spec, ok, err := parseMethod(v, mt, registry)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		specs = append(specs, spec)
	}

	return specs, nil
}

func parseMethod(state reflect.Value, mt reflect.Method, registry *types.Registry) (canon.CommandSpec, bool, error) {
	t := mt.Type
	// receiver, ctx, param and an optional request
	if t.NumIn() < 3 || t.NumIn() > 4 {
		return canon.CommandSpec{}, false, nil
	}
	if !t.In(1).Implements(contextType) {
		return canon.CommandSpec{}, false, nil
	}
	paramType := t.In(2)
	if paramType.Kind() != reflect.Pointer || !paramType.Implements(cmdParamType) {
		return canon.CommandSpec{}, false, nil
	}
	withRequest := t.NumIn() == 4
	if withRequest && t.In(3) != requestType {
		return canon.CommandSpec{}, false, nil
	}

	cp := reflect.New(paramType.Elem()).Interface().(CmdParam)
	use, short := cp.Desc()
	fUse, fDesc := GetCmdFromFlag(cp)
	if len(use) == 0 {
		use = fUse
	}
	if len(short) == 0 {
		short = fDesc
	}
	if len(use) == 0 {
		fnName := mt.Name
		use = strings.ToLower(fnName[:len(fnName)-len("Command")])
	}
	name := strings.Join(lo.Map(ParseUseSegments(use), func(seg string, _ int) string {
		return strings.Fields(seg)[0]
	}), " ")

	params, err := paramSpecs(paramType.Elem(), registry)
	if err != nil {
		return canon.CommandSpec{}, false, errors.Wrapf(err, "command %s", name)
	}

	method := state.Method(mt.Index)
	exec := func(ctx context.Context, req *canon.Request, values canon.Values) error {
		pv := reflect.New(paramType.Elem())
		if err := fillParam(pv.Elem(), values); err != nil {
			return err
		}

		in := []reflect.Value{reflect.ValueOf(ctx), pv}
		if withRequest {
			in = append(in, reflect.ValueOf(req))
		}
		results := method.Call(in)
		return handleResults(results, req)
	}

	return canon.CommandSpec{
		Name:        name,
		Description: short,
		Params:      params,
		Exec:        exec,
	}, true, nil
}

// handleResults reports returned errors and prints returned result sets.
func handleResults(results []reflect.Value, req *canon.Request) error {
	// reverse order, check error first
	for i := 0; i < len(results); i++ {
		result := results[len(results)-i-1]
		switch {
		case result.Type().Implements(errorType):
			// error nil, skip
			if result.IsNil() {
				continue
			}
			return result.Interface().(error)
		case result.Type().Implements(resultType):
			if result.IsNil() {
				continue
			}
			rs := result.Interface().(ResultSet)
			if preset, ok := rs.(*PresetResultSet); ok {
				req.Output(preset.String())
				continue
			}
			req.Output(rs.PrintAs(FormatDefault))
		}
	}
	return nil
}

func GetCmdFromFlag(p CmdParam) (string, string) {
	v := reflect.ValueOf(p)
	if v.Kind() != reflect.Pointer {
		return "", ""
	}

	for v.Kind() != reflect.Struct {
		v = v.Elem()
	}
	tp := v.Type()

	f, has := tp.FieldByName("ParamBase")
	if !has {
		return "", ""
	}

	if f.Type.Kind() != reflect.Struct {
		return "", ""
	}

	tag := f.Tag
	return tag.Get("use"), tag.Get("desc")
}

// ParseUseSegments splits a use line into words, keeping `[arg]` parts
// attached to the word before.
func ParseUseSegments(use string) []string {
	parts := strings.Split(use, " ")
	last := ""
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.HasPrefix(part, "[") && strings.HasSuffix(part, "]") {
			last = fmt.Sprintf("%s %s", last, part)
			continue
		}
		if len(last) > 0 {
			result = append(result, last)
		}
		last = part
	}
	if len(last) > 0 {
		result = append(result, last)
	}
	return result
}

// paramSpecs turns the exported fields of tp into parameter specs.
func paramSpecs(tp reflect.Type, registry *types.Registry) ([]canon.ParamSpec, error) {
	var specs []canon.ParamSpec
	for i := 0; i < tp.NumField(); i++ {
		f := tp.Field(i)
		if !f.IsExported() || f.Anonymous {
			continue
		}

		typeSpec, err := fieldTypeSpec(f)
		if err != nil {
			return nil, err
		}
		spec := canon.ParamSpec{
			Name:        paramName(f),
			Type:        typeSpec,
			Description: f.Tag.Get("desc"),
		}

		if defaultStr, ok := f.Tag.Lookup("default"); ok && !isBoolean(registry, typeSpec) {
			spec.Default, err = parseDefault(registry, typeSpec, defaultStr)
			if err != nil {
				return nil, errors.Wrapf(err, "param %s", spec.Name)
			}
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// isBoolean reports whether spec resolves to a flag type. Flags default to
// false, a default tag on them is ignored.
func isBoolean(registry *types.Registry, spec types.TypeSpec) bool {
	typ, err := registry.Get(spec)
	if err != nil {
		return false
	}
	_, ok := typ.(*types.BooleanType)
	return ok
}

func paramName(f reflect.StructField) string {
	if name := f.Tag.Get("name"); name != "" {
		return name
	}
	return strings.ToLower(f.Name)
}

// fieldTypeSpec infers the type of a parameter field.
func fieldTypeSpec(f reflect.StructField) (types.TypeSpec, error) {
	if options := f.Tag.Get("options"); options != "" {
		return types.SelectionSpec(strings.Split(options, ",")), nil
	}

	spec := types.Spec(f.Tag.Get("type"))
	if spec.Name == "" {
		name, err := kindTypeName(f.Type)
		if err != nil {
			return spec, errors.Wrapf(err, "field %s", f.Name)
		}
		spec.Name = name
	}

	switch spec.Name {
	case types.NameNumber:
		for tag, target := range map[string]**int{"min": &spec.Min, "max": &spec.Max} {
			text, ok := f.Tag.Lookup(tag)
			if !ok {
				continue
			}
			n, err := strconv.Atoi(text)
			if err != nil {
				return spec, errors.Wrapf(err, "field %s %s tag", f.Name, tag)
			}
			*target = &n
		}
	case types.NameArray:
		elem, err := kindTypeName(f.Type.Elem())
		if err != nil {
			return spec, errors.Wrapf(err, "field %s", f.Name)
		}
		subtype := types.Spec(elem)
		spec.Subtype = &subtype
	}
	return spec, nil
}

func kindTypeName(tp reflect.Type) (string, error) {
	switch tp.Kind() {
	case reflect.String:
		return types.NameText, nil
	case reflect.Int, reflect.Int32, reflect.Int64:
		return types.NameNumber, nil
	case reflect.Bool:
		return types.NameBoolean, nil
	case reflect.Slice:
		return types.NameArray, nil
	default:
		return "", errors.Newf("kind %s not supported yet", tp.Kind())
	}
}

func parseDefault(registry *types.Registry, spec types.TypeSpec, text string) (*canon.DefaultValue, error) {
	if text == "" {
		return canon.Optional(), nil
	}
	typ, err := registry.Get(spec)
	if err != nil {
		return nil, err
	}
	c := types.ParseString(typ, text)
	if !c.IsValid() {
		return nil, errors.Newf("invalid default %q: %s", text, c.Message)
	}
	return canon.Default(c.Value), nil
}

// fillParam sets the fields of the param struct pv from values.
func fillParam(pv reflect.Value, values canon.Values) error {
	tp := pv.Type()
	for i := 0; i < tp.NumField(); i++ {
		f := tp.Field(i)
		if !f.IsExported() || f.Anonymous {
			continue
		}
		if err := setField(pv.Field(i), values.Get(paramName(f))); err != nil {
			return errors.Wrapf(err, "param %s", paramName(f))
		}
	}
	return nil
}

func setField(field reflect.Value, value any) error {
	if value == nil {
		return nil
	}
	switch field.Kind() {
	case reflect.String:
		field.SetString(types.OptionName(value))
	case reflect.Int, reflect.Int32, reflect.Int64:
		n, ok := value.(int)
		if !ok {
			return errors.Newf("expect int, got %T", value)
		}
		field.SetInt(int64(n))
	case reflect.Bool:
		b, ok := value.(bool)
		if !ok {
			return errors.Newf("expect bool, got %T", value)
		}
		field.SetBool(b)
	case reflect.Slice:
		elements, ok := value.([]any)
		if !ok {
			return errors.Newf("expect list, got %T", value)
		}
		slice := reflect.MakeSlice(field.Type(), len(elements), len(elements))
		for i, element := range elements {
			if err := setField(slice.Index(i), element); err != nil {
				return err
			}
		}
		field.Set(slice)
	case reflect.Interface:
		field.Set(reflect.ValueOf(value))
	default:
		return errors.AssertionFailedf("field kind %s not supported yet", field.Kind())
	}
	return nil
}

// Use renders a command name with its parameters, e.g.
// `history [--limit <number>] [prefix]`.
func Use(cmd *canon.Command) string {
	parts := []string{cmd.Name()}
	for _, p := range cmd.Params() {
		part := fmt.Sprintf("--%s <%s>", p.Name(), p.Type().Name())
		if p.IsBoolean() {
			part = "--" + p.Name()
		}
		if !p.IsDataRequired() {
			part = "[" + part + "]"
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, " ")
}

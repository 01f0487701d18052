package loader

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/dop251/goja"

	"github.com/localetree/localetree/pkg/translations"
)

// parseModule evaluates a CommonJS-style JavaScript module and converts its
// exported object into a tree fragment. The export is resolved as
// module.exports.default, then module.exports.translations, then
// module.exports itself; whichever applies must be a plain object.
//
// Function values become Lambda leaves bound to the module's runtime. A
// goja runtime is not safe for concurrent use, so invocations are serialized
// behind a per-module mutex; each file gets its own runtime, keeping modules
// independent of each other.
func parseModule(file string, data []byte) (translations.Tree, error) {
	vm := goja.New()

	module := vm.NewObject()
	exports := vm.NewObject()
	if err := module.Set("exports", exports); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrModuleEval, file, err)
	}
	if err := vm.Set("module", module); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrModuleEval, file, err)
	}
	if err := vm.Set("exports", exports); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrModuleEval, file, err)
	}

	if _, err := vm.RunScript(file, string(data)); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrModuleEval, file, err)
	}

	root, err := resolveExport(file, module.Get("exports"))
	if err != nil {
		return nil, err
	}

	m := &moduleRuntime{vm: vm}
	return m.toTree(file, "", root)
}

// resolveExport picks the exported object per the default/translations
// convention and rejects non-object exports.
func resolveExport(file string, exported goja.Value) (*goja.Object, error) {
	obj, ok := asPlainObject(exported)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNonObjectExport, file)
	}

	for _, name := range []string{"default", "translations"} {
		v := obj.Get(name)
		if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
			continue
		}
		named, ok := asPlainObject(v)
		if !ok {
			return nil, fmt.Errorf("%w: %s: %q export", ErrNonObjectExport, file, name)
		}
		return named, nil
	}

	return obj, nil
}

func asPlainObject(v goja.Value) (*goja.Object, bool) {
	obj, ok := v.(*goja.Object)
	if !ok {
		return nil, false
	}
	if _, callable := goja.AssertFunction(v); callable {
		return nil, false
	}
	if obj.ClassName() == "Array" {
		return nil, false
	}
	return obj, true
}

type moduleRuntime struct {
	vm *goja.Runtime
	mu sync.Mutex
}

func (m *moduleRuntime) toTree(file, prefix string, obj *goja.Object) (translations.Tree, error) {
	tree := make(translations.Tree)

	for _, key := range obj.Keys() {
		value := obj.Get(key)
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}

		if fn, ok := goja.AssertFunction(value); ok {
			tree[key] = translations.Lambda{
				Fields: extractParamFields(value.String()),
				Fn:     m.bind(fn),
			}
			continue
		}

		if child, ok := value.(*goja.Object); ok && child.ClassName() != "Array" {
			sub, err := m.toTree(file, full, child)
			if err != nil {
				return nil, err
			}
			tree[key] = sub
			continue
		}

		switch exported := value.Export().(type) {
		case nil, string, bool, int64, float64:
			tree[key] = exported
		default:
			return nil, fmt.Errorf("%w: %s: key %q holds %T", ErrUnsupportedValue, file, full, exported)
		}
	}

	return tree, nil
}

// bind wraps a JavaScript function as a Lambda body. A throwing function
// resolves to the empty string; resolution has no error channel.
func (m *moduleRuntime) bind(fn goja.Callable) func(translations.Params) string {
	return func(p translations.Params) string {
		m.mu.Lock()
		defer m.mu.Unlock()

		arg := goja.Undefined()
		if p != nil {
			arg = m.vm.ToValue(map[string]any(p))
		}

		result, err := fn(goja.Undefined(), arg)
		if err != nil {
			return ""
		}
		return result.String()
	}
}

// extractParamFields recovers parameter names from the source text of a
// function whose first argument is an object destructuring, the authoring
// convention for parameterized leaves. Types are not visible in source, so
// every recovered field reports the full primitive union.
func extractParamFields(src string) map[string]string {
	open := strings.IndexByte(src, '(')
	if open < 0 {
		return nil
	}
	closing := strings.IndexByte(src[open:], ')')
	if closing < 0 {
		return nil
	}

	args := strings.TrimSpace(src[open+1 : open+closing])
	if !strings.HasPrefix(args, "{") {
		return map[string]string{}
	}
	args = strings.TrimPrefix(args, "{")
	if end := strings.IndexByte(args, '}'); end >= 0 {
		args = args[:end]
	}

	fields := make(map[string]string)
	for _, field := range strings.Split(args, ",") {
		name := field
		if idx := strings.IndexAny(name, ":="); idx >= 0 {
			name = name[:idx]
		}
		name = strings.TrimSpace(name)
		if isIdentifier(name) {
			fields[name] = "string | number"
		}
	}
	return fields
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case unicode.IsLetter(r) || r == '_' || r == '$':
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}

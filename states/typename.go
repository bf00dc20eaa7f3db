package states

import (
	"github.com/milvus-io/pilot/types"
)

// TypeNameType is the type of parameters naming a registered type.
const TypeNameType = "typename"

// RegisterTypeNameType registers `typename`, a selection over the names
// registered in registry at parse time.
func RegisterTypeNameType(registry *types.Registry) error {
	return registry.Register(TypeNameType, func(_ types.TypeSpec, r *types.Registry) (types.Type, error) {
		return r.Get(types.SelectionSpec(func() []string { return r.Names() }))
	})
}

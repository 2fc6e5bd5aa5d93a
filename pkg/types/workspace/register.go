package workspace

import (
	"github.com/leapstack-labs/workspace/pkg/core"
	"github.com/leapstack-labs/workspace/pkg/registry"
)

func init() {
	registry.Register(func() core.Factory { return NewFactory() })
}

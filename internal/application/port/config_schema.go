package port

import "github.com/bnema/dockyard/internal/domain/entity"

// ConfigSchemaProvider lists every key the config loader understands, in
// the order 'dockyard config keys' prints them.
type ConfigSchemaProvider interface {
	GetSchema() []entity.ConfigKey
}

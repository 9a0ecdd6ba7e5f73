//go:build tools

// Dependencias de herramientas (swag init genera ./docs).
package tools

import (
	_ "github.com/swaggo/swag"
)

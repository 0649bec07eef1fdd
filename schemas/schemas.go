// Package schemas содержит JSON-схемы событий, которые сервис публикует и потребляет.
package schemas

import "embed"

//go:embed events
var SchemasFS embed.FS

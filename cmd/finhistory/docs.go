package main

// General API documentation for swaggo. Run `swag init -g cmd/finhistory/docs.go -o internal/httpapi/apidocs` to regenerate.
//
// @title           finhistory API
// @version         1.0
// @description     Finnish historical events for genealogy timelines, as GEDCOM EVEN records.
//
// @contact.name   Hannu Tunkkari
// @contact.url    https://github.com/ardhtu/finnish-historical-facts
//
// @license.name   GPL-3.0
// @license.url    https://www.gnu.org/licenses/gpl-3.0.html
//
// @BasePath  /
//
// @schemes http

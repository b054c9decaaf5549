// Package console is the nox command line.
//
//	nox modules [--json]
//	nox register app.views.Home ajax dom [--format json]
//	nox tree --path app.Home --path app.About
//	nox serve [--port 8080]
//	nox version
package console

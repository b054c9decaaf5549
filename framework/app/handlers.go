package app

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	gohttp "github.com/km-arc/go-nox/framework/http"
	"github.com/km-arc/go-nox/framework/namespace"
	"github.com/km-arc/go-nox/framework/nox"
	"github.com/km-arc/go-nox/framework/routing"
)

func (a *Application) routes(r *routing.Router) {
	r.Get("/modules", a.listModules)
	r.Get("/namespaces", a.showTree)
	r.Get("/namespaces/{path}", a.showNamespace)
	r.Post("/namespaces/{path}", a.registerNamespace)
}

// GET /modules
func (a *Application) listModules(w http.ResponseWriter, r *http.Request) {
	gohttp.NewResponse(w).Success(a.Modules.Names())
}

// GET /namespaces[?format=yaml]
func (a *Application) showTree(w http.ResponseWriter, r *http.Request) {
	res := gohttp.NewResponse(w)
	snapshot := a.Nox.Tree().Snapshot()
	if gohttp.NewRequest(r).Query("format") == "yaml" {
		res.YAML(http.StatusOK, snapshot)
		return
	}
	res.Success(snapshot)
}

// GET /namespaces/{path}
func (a *Application) showNamespace(w http.ResponseWriter, r *http.Request) {
	res := gohttp.NewResponse(w)
	path := gohttp.NewRequest(r).RouteParam("path")
	if err := namespace.Validate(path); err != nil {
		res.Unprocessable(err.Error())
		return
	}

	tree := a.Nox.Tree()
	id, ok := tree.Lookup(path)
	if !ok {
		res.NotFound("No namespace at " + path + ".")
		return
	}
	value, _ := tree.Value(id)
	res.Success(map[string]any{
		"path":     path,
		"value":    value,
		"children": tree.SnapshotOf(id),
	})
}

type registerBody struct {
	Modules []string `json:"modules"`
}

// POST /namespaces/{path}  {"modules": ["ajax", "dom"]}
func (a *Application) registerNamespace(w http.ResponseWriter, r *http.Request) {
	req := gohttp.NewRequest(r)
	res := gohttp.NewResponse(w)
	path := req.RouteParam("path")

	var body registerBody
	if err := req.Bind(&body); err != nil && !errors.Is(err, gohttp.ErrEmptyBody) {
		res.Error(http.StatusBadRequest, err.Error())
		return
	}

	record, err := a.RegisterRecord(path, body.Modules)
	switch {
	case errors.Is(err, nox.ErrInvalidNamespace):
		res.Unprocessable(err.Error())
	case errors.Is(err, nox.ErrUnknownModule):
		res.NotFound(err.Error())
	case err != nil:
		a.Logger.Error("registering namespace", zap.String("path", path), zap.Error(err))
		res.ServerError()
	default:
		res.Created(record)
	}
}

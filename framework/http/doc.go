// Package http wraps net/http requests and responses for the inspection API.
//
//	res := gohttp.NewResponse(w)
//	res.Success(tree.Snapshot())     // 200 {"data": {...}}
//	res.NotFound()                   // 404 {"message": "Not found."}
//
//	req := gohttp.NewRequest(r)
//	path := req.RouteParam("path")
//	var body struct{ Modules []string `json:"modules"` }
//	err := req.Bind(&body)
package http

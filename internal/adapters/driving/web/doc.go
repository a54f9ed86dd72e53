// Package web serves the content API over HTTP.
//
// Routes:
//
//	GET /health
//	GET /content/{type}            collection with facets, filtered by q, tag, difficulty, category
//	GET /content/{type}/slugs      slug list
//	GET /content/{type}/{slug}     {metadata, content} or 404 {error}
package web

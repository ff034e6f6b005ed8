// Package fetch retrieves document bytes over HTTP and classifies the
// resource as a single image or a paged document.
//
// Classification is by file extension only:
//
//	kind := fetch.ClassifyURL("https://example.com/invoice.pdf") // KindPaged
//	kind = fetch.ClassifyURL("https://example.com/scan.png")     // KindImage
//
// Fetching is a single attempt with a fixed timeout. Network failures and
// non-success HTTP statuses are returned as a *FetchError and abort the
// whole pipeline; they are never retried.
package fetch

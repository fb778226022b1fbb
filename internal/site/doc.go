// Package site serves the component documentation: an index of the catalog,
// one page per component with its stories rendered server-side, the
// registry manifest and the WebSocket playground.
//
//	srv, err := site.New(site.Options{Config: cfg, Stories: set, Logger: logger})
//	if err != nil {
//	    return err
//	}
//	defer srv.Close()
//	return srv.ListenAndServe(ctx)
package site

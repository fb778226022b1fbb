// Package config loads elements.json, the configuration of the docs site,
// the playground and registry publishing.
//
//	{
//	  "name": "elements",
//	  "version": "0.3.0",
//	  "server": {"host": "localhost", "port": 4000},
//	  "playground": {"maxSessions": 64, "idleTimeout": "5m"},
//	  "registry": {
//	    "url": "https://elements.vango.dev/registry.json",
//	    "output": "dist/registry.json",
//	    "bucket": "elements-registry",
//	    "region": "us-east-1"
//	  },
//	  "theme": "theme.toml",
//	  "stories": "stories.yaml",
//	  "logLevel": "info"
//	}
//
// A missing file is not an error for the commands that only need defaults;
// they call Default instead of Load.
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    errors.PrintError(err)
//	    os.Exit(1)
//	}
//	fmt.Println("Listening on", cfg.Address())
package config

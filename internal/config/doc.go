// Package config provides configuration parsing for LogsViewer.
//
// The configuration is stored in logsviewer.json or logsviewer.toml at the
// project root. This package handles loading, saving, and validating it.
//
// # Configuration File Structure
//
//	{
//	  "server": {
//	    "host": "0.0.0.0",
//	    "port": 8080,
//	    "readTimeout": "60s"
//	  },
//	  "navigation": {
//	    "focusDelay": "50ms",
//	    "focusTarget": "primary-app-container",
//	    "notFoundTitle": "404 Page Not Found",
//	    "duplicatePaths": "reject"
//	  },
//	  "metrics": {"enabled": true, "namespace": "logsviewer"},
//	  "tracing": {"enabled": false},
//	  "log": {"level": "info", "format": "text"}
//	}
//
// The same keys are accepted in TOML. LOGSVIEWER_HOST, LOGSVIEWER_PORT and
// LOGSVIEWER_LOG_LEVEL override the file.
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Listening on", cfg.Address())
package config

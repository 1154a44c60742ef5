// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// The infrastructure package is organized by technical concern:
//
// - area/buffer: In-memory results area guarded by a mutex
// - http/standard: Standard library HTTP client with request logging
// - logger/logrus: Structured logger on logrus with optional file rotation
//
// # HTTP Client
//
// The client makes exactly one attempt per call, bounded by its timeout
// and the caller's context:
//
//	client := standard.NewStandardHTTPClient(30*time.Second, logger)
//	resp, err := client.Get(ctx, "https://www.themealdb.com/api/json/v1/1/filter.php?i=chicken")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
//	logger, err := logrus.New(logrus.Options{Level: "info", Format: "json"})
//	logger.Info("Recipe search completed", map[string]interface{}{
//	    "ingredient": "chicken",
//	    "state":      "populated",
//	})
package infrastructure

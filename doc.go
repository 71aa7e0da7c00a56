// Package ygggo_building persists placed building entities into MySQL (or a local SQLite file)
// and generates short random identifiers for them.
//
// # Overview
//
// The package is a library for editor-style tools: a form collects the building's attributes,
// then calls one of three operations:
//   - TestConnection: open and close a connection to validate settings
//   - SaveRecord / Store.Save: insert one building row
//   - GenerateID / NewID: a 12-symbol id over a 64-symbol alphabet
//
// # Quick Start
//
//	import ggb "github.com/yggai/ygggo_building"
//
//	cfg := ggb.DefaultConfig()
//	cfg.Password = "secret"
//
//	ctx := context.Background()
//	if _, err := ggb.TestConnection(ctx, cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	b := &ggb.Building{EntityID: 5, CurrentHP: 250, MapName: "Town"}
//	rows, _ := ggb.SaveRecord(ctx, b, cfg)
//	if rows != 1 {
//		log.Printf("building %s was not saved", b.ID)
//	}
//
// # Connections
//
// Every Executor call either opens its own connection and closes it before returning, or
// runs on a Connection the caller opened (optionally inside the caller's Tx) and leaves it open.
//
//	conn, _ := ggb.NewConnection(cfg)
//	_ = conn.Open(ctx)
//	defer conn.Close()
//	tx, _ := conn.BeginTx(ctx, nil)
//	_, _ = store.SaveWith(ctx, conn, tx, b)
//	_ = tx.Commit()
//
// # Errors
//
// Statement and connection failures during saves and reads are logged and reported as zero
// rows; callers check the row count. Use Config.Strict or WithStrict(true) to get the error
// instead. TestConnection always returns its error. Errors match ErrConfiguration,
// ErrConnection or ErrStatement with errors.Is.
//
// # Configuration
//
// Config can be built in code or read with ConfigFromEnv, which loads .env files and then
// YGGGO_BUILDING_* variables (e.g. YGGGO_BUILDING_HOST).
package ygggo_building

// Version returns the current library version.
func Version() string { return "v0.1.0-dev" }

package main

import (
	"flag"
	"log"

	"gorm.io/gorm"

	"marketing-tracker/configs"
	"marketing-tracker/models"
)

// Schema migration CLI. Run before starting the server; the server itself
// never touches the schema.
func main() {
	dryRun := flag.Bool("dry-run", false, "show what would be migrated without executing")
	flag.Parse()

	configs.InitLogger()
	configs.LoadEnv()
	logger := configs.LogWithContext("migrate", "run")

	db, err := configs.ConnectDatabase()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if *dryRun {
		for _, m := range models.All() {
			logger.Info("Would migrate ", db.Migrator().CurrentDatabase(), " model ", m)
		}
		logger.Info("Dry run complete, no changes applied")
		return
	}

	if err := db.AutoMigrate(models.All()...); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
	logger.Info("Schema migrated")

	if err := migrateLegacyPlacementLinks(db); err != nil {
		log.Fatalf("Legacy placement migration failed: %v", err)
	}

	logger.Info("Migration complete")
}

// migrateLegacyPlacementLinks backfills the program_placement join table
// from the old placement.program_id column and drops the column. A no-op
// on databases that never had it.
func migrateLegacyPlacementLinks(db *gorm.DB) error {
	if !db.Migrator().HasColumn(&models.Placement{}, "program_id") {
		return nil
	}

	logger := configs.LogWithContext("migrate", "placement-links")
	logger.Info("Found legacy placement.program_id column, backfilling program_placement")

	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Exec(
			"INSERT INTO program_placement (program_id, placement_id)" +
				" SELECT program_id, id FROM placement" +
				" WHERE program_id IS NOT NULL" +
				" AND NOT EXISTS (SELECT 1 FROM program_placement pp" +
				" WHERE pp.program_id = placement.program_id AND pp.placement_id = placement.id)",
		).Error
		if err != nil {
			return err
		}
		return tx.Migrator().DropColumn(&models.Placement{}, "program_id")
	})
}

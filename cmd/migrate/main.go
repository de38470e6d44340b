package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/bbapp/bulletin-backend/internal/config"
	"github.com/bbapp/bulletin-backend/internal/migration"
	"github.com/bbapp/bulletin-backend/internal/repository"
	"github.com/bbapp/bulletin-backend/pkg/jwt"
	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	configPath := flag.String("config", "configs/config.local.yaml", "config file path")
	dryRun := flag.Bool("dry-run", false, "list the tables that would be migrated")
	verify := flag.Bool("verify", false, "report row and orphan counts")
	issueToken := flag.String("issue-token", "", "print a session token for the given username")
	verbose := flag.Bool("verbose", false, "verbose SQL logging")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logLevel := gormlogger.Warn
	if *verbose {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.GetDSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get underlying DB: %v", err)
	}
	defer sqlDB.Close()

	switch {
	case *dryRun:
		runDryRun(db)
	case *verify:
		runVerify(db)
	case *issueToken != "":
		runIssueToken(db, cfg, *issueToken)
	default:
		if err := migration.Run(db); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		log.Println("Migration completed")
	}
}

func runDryRun(db *gorm.DB) {
	tables, err := migration.Tables(db)
	if err != nil {
		log.Fatalf("Failed to list tables: %v", err)
	}
	for _, table := range tables {
		state := "create"
		if db.Migrator().HasTable(table) {
			state = "exists"
		}
		log.Printf("[dry-run] %-15s %s", table, state)
	}
}

func runVerify(db *gorm.DB) {
	report, err := migration.Verify(db)
	if err != nil {
		log.Fatalf("Verify failed: %v", err)
	}

	tables := make([]string, 0, len(report.Rows))
	for table := range report.Rows {
		tables = append(tables, table)
	}
	sort.Strings(tables)
	for _, table := range tables {
		fmt.Printf("%-15s %d rows\n", table, report.Rows[table])
	}
	fmt.Printf("orphan comments:        %d\n", report.OrphanComments)
	fmt.Printf("orphan access logs:     %d\n", report.OrphanAccessLogs)
	fmt.Printf("orphan bulletin stars:  %d\n", report.OrphanBulletinStars)
	fmt.Printf("orphan comment stars:   %d\n", report.OrphanCommentStars)
	fmt.Printf("bulletins without user: %d\n", report.BulletinsWithoutUser)
}

func runIssueToken(db *gorm.DB, cfg *config.Config, username string) {
	user, err := repository.NewUserRepository(db).FindByUsername(context.Background(), username)
	if err != nil {
		log.Fatalf("Failed to find user %q: %v", username, err)
	}

	token, err := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.ExpiresIn).GenerateToken(user.ID, user.Username)
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}
	fmt.Fprintln(os.Stdout, token)
}

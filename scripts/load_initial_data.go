package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ems-backend/internal/config"
	"ems-backend/internal/database"
	"ems-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type TeamData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	LeadEmail   string `yaml:"lead_email,omitempty"`
}

type UserData struct {
	Email     string `yaml:"email"`
	Password  string `yaml:"password"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Role      string `yaml:"role"`
	TeamName  string `yaml:"team_name,omitempty"`
}

type LeaveTypeData struct {
	Name string `yaml:"name"`
}

// AllocationPolicyData grants every seeded user an allocation per leave type,
// for the current month and months_ahead further ones.
type AllocationPolicyData struct {
	MonthsAhead   int `yaml:"months_ahead"`
	AllocatedDays int `yaml:"allocated_days"`
}

// File structures
type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type LeaveTypesFile struct {
	LeaveTypes []LeaveTypeData `yaml:"leave_types"`
}

type AllocationsFile struct {
	AllocationPolicy AllocationPolicyData `yaml:"allocation_policy"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	teams, err := loadTeams(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}

	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	leaveTypes, err := loadLeaveTypes(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load leave types: %w", err)
	}

	policy, err := loadAllocationPolicy(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load allocation policy: %w", err)
	}

	// Create teams first
	teamMap := make(map[string]*models.Team)
	teamCreated := 0
	for _, teamData := range teams {
		team, created, err := createTeam(db, teamData)
		if err != nil {
			return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
		}
		teamMap[teamData.Name] = team
		if created {
			teamCreated++
		}
	}
	log.Printf("📋 Teams: %d created, %d total", teamCreated, len(teams))

	// Create users
	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range users {
		user, created, err := createUser(db, userData, teamMap)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		userMap[userData.Email] = user
		if created {
			userCreated++
		}
	}
	log.Printf("📋 Users: %d created, %d total", userCreated, len(users))

	// Wire team leads now that both sides exist
	leadsWired := 0
	for _, teamData := range teams {
		if teamData.LeadEmail == "" {
			continue
		}
		lead := userMap[teamData.LeadEmail]
		if lead == nil {
			log.Printf("⚠️  Warning: lead %s not found for team %s", teamData.LeadEmail, teamData.Name)
			continue
		}
		team := teamMap[teamData.Name]
		if team.LeadID != nil && *team.LeadID == lead.ID {
			continue
		}
		if err := db.Model(team).Update("lead_id", lead.ID).Error; err != nil {
			return fmt.Errorf("failed to set lead for team %s: %w", teamData.Name, err)
		}
		leadsWired++
	}
	log.Printf("📋 Team leads: %d wired", leadsWired)

	// Create leave types
	typeMap := make(map[string]*models.LeaveType)
	typeCreated := 0
	for _, typeData := range leaveTypes {
		leaveType, created, err := createLeaveType(db, typeData)
		if err != nil {
			return fmt.Errorf("failed to create leave type %s: %w", typeData.Name, err)
		}
		typeMap[typeData.Name] = leaveType
		if created {
			typeCreated++
		}
	}
	log.Printf("📋 Leave types: %d created, %d total", typeCreated, len(leaveTypes))

	// Grant allocations per the policy
	allocationCreated := 0
	for _, user := range userMap {
		for _, leaveType := range typeMap {
			created, err := createAllocations(db, user, leaveType, policy)
			if err != nil {
				log.Printf("⚠️  Warning: failed to create allocations for %s/%s: %v", user.Email, leaveType.Name, err)
				continue
			}
			allocationCreated += created
		}
	}
	log.Printf("📋 Allocations: %d created", allocationCreated)

	return nil
}

func loadTeams(dataDir string) ([]TeamData, error) {
	var allTeams []TeamData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "teams") {
			var file TeamsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTeams = append(allTeams, file.Teams...)
		}
		return nil
	})

	return allTeams, err
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "users") {
			var file UsersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allUsers = append(allUsers, file.Users...)
		}
		return nil
	})

	return allUsers, err
}

func loadLeaveTypes(dataDir string) ([]LeaveTypeData, error) {
	var allTypes []LeaveTypeData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "leave_types") {
			var file LeaveTypesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTypes = append(allTypes, file.LeaveTypes...)
		}
		return nil
	})

	return allTypes, err
}

func loadAllocationPolicy(dataDir string) (AllocationPolicyData, error) {
	// Defaults apply when no allocations file is present
	policy := AllocationPolicyData{MonthsAhead: 0, AllocatedDays: 2}

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "allocations") {
			var file AllocationsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			policy = file.AllocationPolicy
		}
		return nil
	})

	return policy, err
}

func createTeam(db *gorm.DB, teamData TeamData) (*models.Team, bool, error) {
	var team models.Team
	if err := db.Where("name = ?", teamData.Name).First(&team).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			team = models.Team{
				Name:        teamData.Name,
				Description: teamData.Description,
				Status:      models.StatusActive,
			}

			if err := db.Create(&team).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create team: %w", err)
			}
			return &team, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query team: %w", err)
		}
	}

	return &team, false, nil // created = false (existing)
}

func createUser(db *gorm.DB, userData UserData, teamMap map[string]*models.Team) (*models.User, bool, error) {
	var user models.User
	if err := db.Where("email = ?", userData.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			password := userData.Password
			if password == "" {
				password = "changeme"
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return nil, false, fmt.Errorf("failed to hash password: %w", err)
			}

			role := models.RoleEmployee
			if userData.Role != "" {
				role = models.Role(userData.Role)
			}

			user = models.User{
				Email:        userData.Email,
				PasswordHash: string(hash),
				FirstName:    userData.FirstName,
				LastName:     userData.LastName,
				Role:         role,
				Status:       models.StatusActive,
			}
			if userData.TeamName != "" {
				if team := teamMap[userData.TeamName]; team != nil {
					user.TeamID = &team.ID
				}
			}

			if err := db.Create(&user).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create user: %w", err)
			}
			return &user, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query user: %w", err)
		}
	}

	return &user, false, nil // created = false (existing)
}

func createLeaveType(db *gorm.DB, typeData LeaveTypeData) (*models.LeaveType, bool, error) {
	var leaveType models.LeaveType
	if err := db.Where("name = ?", typeData.Name).First(&leaveType).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			leaveType = models.LeaveType{
				Name:   typeData.Name,
				Status: models.StatusActive,
			}

			if err := db.Create(&leaveType).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create leave type: %w", err)
			}
			return &leaveType, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query leave type: %w", err)
		}
	}

	return &leaveType, false, nil // created = false (existing)
}

// createAllocations grants the user an allocation per policy month, skipping
// months that already have one. Returns how many rows were inserted.
func createAllocations(db *gorm.DB, user *models.User, leaveType *models.LeaveType, policy AllocationPolicyData) (int, error) {
	created := 0
	start := models.MonthStart(time.Now().UTC())

	for i := 0; i <= policy.MonthsAhead; i++ {
		month := start.AddDate(0, i, 0)

		var allocation models.LeaveAllocation
		err := db.Where(
			"employee_id = ? AND leave_type_id = ? AND valid_month = ? AND status = ?",
			user.ID, leaveType.ID, month, models.StatusActive,
		).First(&allocation).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return created, fmt.Errorf("failed to query allocation: %w", err)
		}

		allocation = models.LeaveAllocation{
			EmployeeID:    user.ID,
			LeaveTypeID:   leaveType.ID,
			ValidMonth:    month,
			AllocatedDays: policy.AllocatedDays,
			UsedDays:      0,
			Status:        models.StatusActive,
		}
		if err := db.Create(&allocation).Error; err != nil {
			return created, fmt.Errorf("failed to create allocation: %w", err)
		}
		created++
	}

	return created, nil
}

package migrations

import "gorm.io/gorm"

// GetAllMigrations returns the schema migrations in the order they must run.
func GetAllMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		createProfilesAndGroups(),
		createCourses(),
		createMatchesAndTeams(),
		createSkillIndexHistory(),
	}
}

func createProfilesAndGroups() MigrationDefinition {
	return MigrationDefinition{
		Name: "2025_01_01_000000_create_profiles_and_groups",
		Up: func(db *gorm.DB) error {
			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS profiles (
					id UUID PRIMARY KEY,
					username VARCHAR(255) NOT NULL,
					full_name VARCHAR(255),
					skill_index NUMERIC(4,1) NULL,
					created_at TIMESTAMPTZ DEFAULT NOW(),
					updated_at TIMESTAMPTZ DEFAULT NOW(),
					deleted_at TIMESTAMPTZ NULL
				);
				CREATE UNIQUE INDEX IF NOT EXISTS idx_profiles_username ON profiles(username);
				CREATE INDEX IF NOT EXISTS idx_profiles_deleted_at ON profiles(deleted_at);
			`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS groups (
					id BIGSERIAL PRIMARY KEY,
					name VARCHAR(255) NOT NULL,
					slug VARCHAR(255) NOT NULL UNIQUE,
					description TEXT,
					nb_members INT DEFAULT 0,
					nb_matches INT DEFAULT 0,
					created_at TIMESTAMPTZ DEFAULT NOW(),
					updated_at TIMESTAMPTZ DEFAULT NOW(),
					deleted_at TIMESTAMPTZ NULL
				);
				CREATE INDEX IF NOT EXISTS idx_groups_deleted_at ON groups(deleted_at);
			`).Error; err != nil {
				return err
			}

			return db.Exec(`
				CREATE TABLE IF NOT EXISTS group_members (
					id BIGSERIAL PRIMARY KEY,
					group_id BIGINT NOT NULL REFERENCES groups(id) ON DELETE CASCADE,
					profile_id UUID NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
					skill_index NUMERIC(4,1) NULL,
					joined_at TIMESTAMPTZ DEFAULT NOW(),
					created_at TIMESTAMPTZ DEFAULT NOW(),
					updated_at TIMESTAMPTZ DEFAULT NOW()
				);
				CREATE UNIQUE INDEX IF NOT EXISTS idx_group_members_group_profile ON group_members(group_id, profile_id);
				CREATE INDEX IF NOT EXISTS idx_group_members_profile_id ON group_members(profile_id);
			`).Error
		},
		Down: func(db *gorm.DB) error {
			return db.Exec(`
				DROP TABLE IF EXISTS group_members;
				DROP TABLE IF EXISTS groups;
				DROP TABLE IF EXISTS profiles;
			`).Error
		},
	}
}

func createCourses() MigrationDefinition {
	return MigrationDefinition{
		Name: "2025_01_01_000100_create_courses",
		Up: func(db *gorm.DB) error {
			return db.Exec(`
				CREATE TABLE IF NOT EXISTS courses (
					id BIGSERIAL PRIMARY KEY,
					name VARCHAR(255) NOT NULL,
					par INT NOT NULL,
					rating NUMERIC(4,1) NOT NULL,
					slope INT NOT NULL DEFAULT 113,
					created_at TIMESTAMPTZ DEFAULT NOW(),
					updated_at TIMESTAMPTZ DEFAULT NOW(),
					deleted_at TIMESTAMPTZ NULL,
					CONSTRAINT chk_courses_slope CHECK (slope BETWEEN 55 AND 155)
				);
				CREATE INDEX IF NOT EXISTS idx_courses_deleted_at ON courses(deleted_at);
			`).Error
		},
		Down: func(db *gorm.DB) error {
			return db.Exec(`DROP TABLE IF EXISTS courses;`).Error
		},
	}
}

func createMatchesAndTeams() MigrationDefinition {
	return MigrationDefinition{
		Name: "2025_01_01_000200_create_matches_and_teams",
		Up: func(db *gorm.DB) error {
			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS matches (
					id BIGSERIAL PRIMARY KEY,
					group_id BIGINT NOT NULL REFERENCES groups(id) ON DELETE CASCADE,
					course_id BIGINT NOT NULL REFERENCES courses(id),
					format VARCHAR(20) NOT NULL,
					holes_played INT NOT NULL DEFAULT 18,
					status VARCHAR(20) DEFAULT 'pending',
					strokes_overridden BOOLEAN DEFAULT FALSE,
					skill_adjustment VARCHAR(20) DEFAULT 'pending',
					scheduled_at TIMESTAMPTZ NULL,
					completed_at TIMESTAMPTZ NULL,
					adjusted_at TIMESTAMPTZ NULL,
					created_at TIMESTAMPTZ DEFAULT NOW(),
					updated_at TIMESTAMPTZ DEFAULT NOW(),
					deleted_at TIMESTAMPTZ NULL,
					CONSTRAINT chk_matches_holes CHECK (holes_played IN (9, 18)),
					CONSTRAINT chk_matches_status CHECK (status IN ('pending', 'teams_ready', 'completed'))
				);
				CREATE INDEX IF NOT EXISTS idx_matches_group_id ON matches(group_id);
				CREATE INDEX IF NOT EXISTS idx_matches_course_id ON matches(course_id);
				CREATE INDEX IF NOT EXISTS idx_matches_status ON matches(status);
				CREATE INDEX IF NOT EXISTS idx_matches_skill_adjustment ON matches(skill_adjustment);
				CREATE INDEX IF NOT EXISTS idx_matches_deleted_at ON matches(deleted_at);
			`).Error; err != nil {
				return err
			}

			if err := db.Exec(`
				CREATE TABLE IF NOT EXISTS teams (
					id BIGSERIAL PRIMARY KEY,
					match_id BIGINT NOT NULL REFERENCES matches(id) ON DELETE CASCADE,
					team_number INT NOT NULL,
					handicap NUMERIC(5,1) NOT NULL DEFAULT 0,
					handicap_strokes INT NOT NULL DEFAULT 0 CHECK (handicap_strokes >= 0),
					gross_score INT NULL CHECK (gross_score >= 0),
					net_score INT NULL,
					is_winner BOOLEAN DEFAULT FALSE,
					created_at TIMESTAMPTZ DEFAULT NOW(),
					updated_at TIMESTAMPTZ DEFAULT NOW()
				);
				CREATE UNIQUE INDEX IF NOT EXISTS idx_teams_match_number ON teams(match_id, team_number);
			`).Error; err != nil {
				return err
			}

			return db.Exec(`
				CREATE TABLE IF NOT EXISTS team_players (
					id BIGSERIAL PRIMARY KEY,
					team_id BIGINT NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
					match_id BIGINT NOT NULL REFERENCES matches(id) ON DELETE CASCADE,
					profile_id UUID NOT NULL REFERENCES profiles(id),
					skill_index NUMERIC(4,1) NOT NULL,
					course_handicap NUMERIC(5,1) NOT NULL,
					created_at TIMESTAMPTZ DEFAULT NOW()
				);
				CREATE UNIQUE INDEX IF NOT EXISTS idx_team_players_match_profile ON team_players(match_id, profile_id);
				CREATE INDEX IF NOT EXISTS idx_team_players_team_id ON team_players(team_id);
				CREATE INDEX IF NOT EXISTS idx_team_players_profile_id ON team_players(profile_id);
			`).Error
		},
		Down: func(db *gorm.DB) error {
			return db.Exec(`
				DROP TABLE IF EXISTS team_players;
				DROP TABLE IF EXISTS teams;
				DROP TABLE IF EXISTS matches;
			`).Error
		},
	}
}

func createSkillIndexHistory() MigrationDefinition {
	return MigrationDefinition{
		Name: "2025_01_01_000300_create_skill_index_history",
		Up: func(db *gorm.DB) error {
			return db.Exec(`
				CREATE TABLE IF NOT EXISTS skill_index_history (
					id BIGSERIAL PRIMARY KEY,
					group_id BIGINT NOT NULL REFERENCES groups(id) ON DELETE CASCADE,
					profile_id UUID NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
					match_id BIGINT NOT NULL REFERENCES matches(id) ON DELETE CASCADE,
					index_before NUMERIC(4,1) NOT NULL,
					index_after NUMERIC(4,1) NOT NULL,
					index_change NUMERIC(4,1) NOT NULL,
					differential NUMERIC(6,1) NOT NULL,
					matches_played INT NOT NULL,
					holes_played INT NOT NULL,
					created_at TIMESTAMPTZ DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_skill_index_history_group_profile ON skill_index_history(group_id, profile_id);
				CREATE INDEX IF NOT EXISTS idx_skill_index_history_match_id ON skill_index_history(match_id);
				CREATE INDEX IF NOT EXISTS idx_skill_index_history_created_at ON skill_index_history(created_at);
			`).Error
		},
		Down: func(db *gorm.DB) error {
			return db.Exec(`DROP TABLE IF EXISTS skill_index_history;`).Error
		},
	}
}

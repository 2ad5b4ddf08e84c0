// file: services/score_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CTFLab/database"
	"CTFLab/models"
)

func insertSolve(t *testing.T, userID, challengeID uint32, at time.Time) {
	t.Helper()
	require.NoError(t, database.DB.Create(&models.Solve{
		UserID:      userID,
		ChallengeID: challengeID,
		SolveTime:   at,
	}).Error)
}

func TestTotalScoreMatchesLedger(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "alice", "")
	chal1 := createTestChallenge(t, "web-101", 100)
	chal2 := createTestChallenge(t, "crypto-201", 250)
	now := time.Now()

	score, err := TotalScore(user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, score)

	insertSolve(t, user.ID, chal1.ID, now)
	insertSolve(t, user.ID, chal2.ID, now)

	score, err = TotalScore(user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 350, score)
}

func TestLeaderboardOrderingAndTieBreak(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "alice", "")
	bob := createTestUser(t, "bob", "")
	carol := createTestUser(t, "carol", "")
	chal1 := createTestChallenge(t, "web-101", 100)
	chal2 := createTestChallenge(t, "crypto-201", 250)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// carol 350 分；alice 和 bob 同为 100 分，bob 先解出
	insertSolve(t, carol.ID, chal1.ID, base)
	insertSolve(t, carol.ID, chal2.ID, base.Add(30*time.Minute))
	insertSolve(t, bob.ID, chal1.ID, base.Add(10*time.Minute))
	insertSolve(t, alice.ID, chal1.ID, base.Add(20*time.Minute))

	entries, err := Leaderboard(10)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, carol.ID, entries[0].UserID)
	assert.EqualValues(t, 350, entries[0].Score)
	// 同分时先解出者在前
	assert.Equal(t, bob.ID, entries[1].UserID)
	assert.Equal(t, alice.ID, entries[2].UserID)
}

func TestLeaderboardLimit(t *testing.T) {
	setupTestDB(t)
	chal := createTestChallenge(t, "web-101", 100)
	base := time.Now()
	for _, name := range []string{"u1", "u2", "u3"} {
		u := createTestUser(t, name, "")
		insertSolve(t, u.ID, chal.ID, base)
	}

	entries, err := Leaderboard(2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestTeamLeaderboardIsFoldOverMembers(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "alice", "RedTeam")
	bob := createTestUser(t, "bob", "RedTeam")
	carol := createTestUser(t, "carol", "BlueTeam")
	dave := createTestUser(t, "dave", "") // 无队伍，不进队伍榜
	chal1 := createTestChallenge(t, "web-101", 100)
	chal2 := createTestChallenge(t, "crypto-201", 250)
	now := time.Now()

	insertSolve(t, alice.ID, chal1.ID, now)
	insertSolve(t, bob.ID, chal2.ID, now)
	insertSolve(t, carol.ID, chal1.ID, now)
	insertSolve(t, dave.ID, chal2.ID, now)

	entries, err := TeamLeaderboard(10)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "RedTeam", entries[0].TeamName)
	assert.EqualValues(t, 350, entries[0].Score)
	assert.Equal(t, 2, entries[0].MemberCount)
	assert.Equal(t, "BlueTeam", entries[1].TeamName)
	assert.EqualValues(t, 100, entries[1].Score)
}

func TestTeamNamesAreCaseSensitive(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "alice", "redteam")
	bob := createTestUser(t, "bob", "RedTeam")
	chal := createTestChallenge(t, "web-101", 100)
	now := time.Now()

	insertSolve(t, alice.ID, chal.ID, now)
	insertSolve(t, bob.ID, chal.ID, now)

	entries, err := TeamLeaderboard(10)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestRecomputeScoresRepairsDrift(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "alice", "")
	bob := createTestUser(t, "bob", "")
	chal := createTestChallenge(t, "web-101", 100)
	now := time.Now()

	insertSolve(t, alice.ID, chal.ID, now)

	// 人为制造缓存漂移
	require.NoError(t, database.DB.Model(&models.User{}).
		Where("id = ?", alice.ID).Update("total_score", 9999).Error)
	require.NoError(t, database.DB.Model(&models.User{}).
		Where("id = ?", bob.ID).Update("total_score", 500).Error)

	require.NoError(t, RecomputeScores())

	var freshAlice, freshBob models.User
	database.DB.First(&freshAlice, alice.ID)
	database.DB.First(&freshBob, bob.ID)
	assert.EqualValues(t, 100, freshAlice.TotalScore)
	assert.EqualValues(t, 0, freshBob.TotalScore)
}

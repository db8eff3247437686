package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect_CascadeOrder(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Intent
	}{
		{"self representation", "can i fight my case without a lawyer", IntentSelfRepresentation},
		{"self representation beats procedure", "how to represent myself in court", IntentSelfRepresentation},
		{"dispute", "neighbor encroached on my land", IntentDispute},
		{"inheritance", "who gets property after father died without will", IntentInheritance},
		{"non payment", "my employer is not paying my dues", IntentNonPayment},
		{"harassment", "my landlord keeps threatening me", IntentHarassment},
		{"refund", "shop is refusing my refund", IntentRefund},
		{"fraud", "i was cheated by an online seller", IntentFraud},
		{"defective", "the phone i got is faulty", IntentDefective},
		{"delay", "my case is pending for years with no progress", IntentDelay},
		{"procedure", "how to file a consumer case", IntentProcedure},
		{"cost", "how much does a divorce lawyer charge in fees", IntentCost},
		{"time", "what is the limitation period for appeal", IntentTime},
		{"rights", "what are my rights during arrest", IntentRights},
		{"punishment", "teacher beat my child severely", IntentPunishment},
		{"documents", "which documents are needed for registration", IntentDocuments},
		{"definition", "what is anticipatory bail", IntentDefinition},
		{"grounds", "on what basis can bail be denied", IntentGrounds},
		{"general fallback", "namaste", IntentGeneral},
		{"empty", "", IntentGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := Detect(tt.query)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetect_ConsequenceBranches(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Intent
	}{
		{"mutual goes to procedure", "what will happen if both want mutual divorce", IntentProcedure},
		{"violence goes to punishment", "what will happen if someone abuse a child", IntentPunishment},
		{"generic consequence", "what will happen if i skip a court date", IntentConsequence},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := Detect(tt.query)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetect_ReturnsPriorityKeywords(t *testing.T) {
	intent, priority := Detect("how to file an fir")
	assert.Equal(t, IntentProcedure, intent)
	assert.Contains(t, priority, "procedure")
	assert.Contains(t, priority, "how to")

	intent, priority = Detect("complete gibberish zzz")
	assert.Equal(t, IntentGeneral, intent)
	assert.Empty(t, priority)
}

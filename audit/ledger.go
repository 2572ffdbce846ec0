package audit

import (
	"time"

	"github.com/fwojciec/seoaudit"
)

// Reconcile pairs freshly derived suggestions with their approval state.
// Statuses recorded under the same fingerprint carry forward unchanged;
// suggestions appearing for the first time start pending. A prior record
// for a different fingerprint is ignored, which is what starts a fresh
// all-pending ledger when content changes. Suggestions that no longer
// reproduce are simply absent from the result; their historical records
// stay in the store untouched.
func Reconcile(fingerprint string, suggestions []seoaudit.Suggestion, prior *seoaudit.AuditRecord) []seoaudit.AuditSuggestion {
	var carried map[string]seoaudit.ApprovalRecord
	if prior != nil && prior.Fingerprint == fingerprint {
		carried = make(map[string]seoaudit.ApprovalRecord, len(prior.Suggestions))
		for _, s := range prior.Suggestions {
			carried[s.Suggestion.ID] = s.Approval
		}
	}

	out := make([]seoaudit.AuditSuggestion, len(suggestions))
	for i, suggestion := range suggestions {
		approval := seoaudit.ApprovalRecord{
			SuggestionID: suggestion.ID,
			Status:       seoaudit.StatusPending,
		}
		if prev, ok := carried[suggestion.ID]; ok {
			approval = prev
		}
		out[i] = seoaudit.AuditSuggestion{Suggestion: suggestion, Approval: approval}
	}
	return out
}

// Decide records a human approval decision on a suggestion within a
// record. Only pending suggestions can be decided, and only approved or
// rejected are valid decisions; terminal states never transition again
// under the same fingerprint. Returns ENOTFOUND when the suggestion is not
// part of the record's active view.
func Decide(record *seoaudit.AuditRecord, suggestionID string, status seoaudit.Status, now time.Time) error {
	if !status.Terminal() {
		return seoaudit.Errorf(seoaudit.EINVALID, "decision must be %q or %q, got %q", seoaudit.StatusApproved, seoaudit.StatusRejected, status)
	}

	for i := range record.Suggestions {
		if record.Suggestions[i].Suggestion.ID != suggestionID {
			continue
		}
		if record.Suggestions[i].Approval.Status.Terminal() {
			return seoaudit.Errorf(seoaudit.EINVALID, "suggestion %s is already %s", suggestionID, record.Suggestions[i].Approval.Status)
		}
		record.Suggestions[i].Approval.Status = status
		record.Suggestions[i].Approval.DecidedAt = &now
		return nil
	}

	return seoaudit.Errorf(seoaudit.ENOTFOUND, "suggestion %s not found in audit record for %s", suggestionID, record.SourceID)
}

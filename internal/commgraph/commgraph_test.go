package commgraph

import (
	"math"
	"testing"

	"autoready/internal/domain"
)

func event(sender string, recipients ...string) domain.CommunicationEvent {
	return domain.CommunicationEvent{Sender: sender, Recipients: recipients}
}

func TestPathGraphCentrality(t *testing.T) {
	// a-b-c-d-e path: degrees 1,2,2,2,1 over 5 nodes.
	comms := domain.CommunicationBundle{
		Emails: []domain.CommunicationEvent{
			event("a", "b"),
			event("b", "c"),
		},
		Chats: []domain.CommunicationEvent{
			event("c", "d"),
			event("d", "e"),
		},
	}
	got := MeanDegreeCentrality(comms)
	want := (0.25 + 0.5 + 0.5 + 0.5 + 0.25) / 5
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestNoRecipientsScoresZero(t *testing.T) {
	comms := domain.CommunicationBundle{
		Emails: []domain.CommunicationEvent{event("a"), event("b")},
	}
	if got := MeanDegreeCentrality(comms); got != 0.0 {
		t.Fatalf("expected 0.0, got %v", got)
	}
}

func TestEmptyBundleScoresZero(t *testing.T) {
	if got := MeanDegreeCentrality(domain.CommunicationBundle{}); got != 0.0 {
		t.Fatalf("expected 0.0, got %v", got)
	}
}

func TestOnlyFirstRecipientCounts(t *testing.T) {
	// b gets an edge; c and d are never added as nodes.
	comms := domain.CommunicationBundle{
		Emails: []domain.CommunicationEvent{event("a", "b", "c", "d")},
	}
	got := MeanDegreeCentrality(comms)
	if got != 1.0 {
		t.Fatalf("expected 1.0 for a two-node graph, got %v", got)
	}
}

func TestDuplicateEdgesCollapse(t *testing.T) {
	comms := domain.CommunicationBundle{
		Emails: []domain.CommunicationEvent{event("a", "b"), event("a", "b")},
		Chats:  []domain.CommunicationEvent{event("b", "a")},
	}
	if got := MeanDegreeCentrality(comms); got != 1.0 {
		t.Fatalf("expected 1.0, got %v", got)
	}
}

func TestSelfMessageScoresZero(t *testing.T) {
	comms := domain.CommunicationBundle{
		Chats: []domain.CommunicationEvent{event("a", "a")},
	}
	if got := MeanDegreeCentrality(comms); got != 0.0 {
		t.Fatalf("expected 0.0 for single-node graph, got %v", got)
	}
}

func TestSelfLoopAmongOtherNodesAddsNodeButNoEdge(t *testing.T) {
	// The self-messaging sender joins the graph as an isolated node with
	// degree 0 (no self-loops in a simple graph): degrees 0, 1, 1 over
	// three nodes.
	comms := domain.CommunicationBundle{
		Emails: []domain.CommunicationEvent{event("a", "a")},
		Chats:  []domain.CommunicationEvent{event("b", "c")},
	}
	got := MeanDegreeCentrality(comms)
	want := (0.0 + 0.5 + 0.5) / 3
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

package domain_test

import (
	"fmt"
	"testing"

	"github.com/DanielPopoola/cxtrauma-orders/internal/core/domain"
	"github.com/cucumber/godog"
)

// fieldState holds what the simulated form shows during one scenario.
type fieldState struct {
	identityRaw string
	shown       string
	caret       int
	phoneRaw    string

	catalog  *domain.Catalog
	cart     *domain.Cart
	notified int
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

func InitializeScenario(sc *godog.ScenarioContext) {
	fs := &fieldState{catalog: domain.DefaultCatalog()}

	sc.Step(`^the identity "([^"]*)" is typed$`, fs.identityIsTyped)
	sc.Step(`^the identity "([^"]*)" is typed with the caret at (\d+)$`, fs.identityIsTypedWithCaret)
	sc.Step(`^the identity field shows "([^"]*)"$`, fs.fieldShows)
	sc.Step(`^the identity is (valid|invalid)$`, fs.identityIs)
	sc.Step(`^the caret is at (\d+)$`, fs.caretIsAt)

	sc.Step(`^the phone field is focused$`, fs.phoneFieldIsFocused)
	sc.Step(`^the phone "([^"]*)" is typed$`, fs.phoneIsTyped)
	sc.Step(`^the phone field shows "([^"]*)"$`, fs.fieldShows)
	sc.Step(`^the phone is (valid|invalid)$`, fs.phoneIs)

	sc.Step(`^an empty cart$`, fs.anEmptyCart)
	sc.Step(`^I add the exam "([^"]*)"$`, fs.iAddTheExam)
	sc.Step(`^I clear the cart$`, fs.iClearTheCart)
	sc.Step(`^the cart holds (\d+) exams$`, fs.theCartHolds)
	sc.Step(`^the cart total reads "([^"]*)"$`, fs.theCartTotalReads)
	sc.Step(`^the cart was notified (\d+) times$`, fs.theCartWasNotified)
}

func (fs *fieldState) identityIsTyped(raw string) error {
	return fs.identityIsTypedWithCaret(raw, len(raw))
}

func (fs *fieldState) identityIsTypedWithCaret(raw string, caret int) error {
	fs.identityRaw = raw
	fs.shown, fs.caret = domain.FormatIdentityAt(raw, caret)
	return nil
}

func (fs *fieldState) fieldShows(expected string) error {
	if fs.shown != expected {
		return fmt.Errorf("expected field to show %q, got %q", expected, fs.shown)
	}
	return nil
}

func (fs *fieldState) identityIs(verdict string) error {
	return checkVerdict(verdict, domain.IsValidIdentity(fs.identityRaw), fs.identityRaw)
}

func (fs *fieldState) caretIsAt(expected int) error {
	if fs.caret != expected {
		return fmt.Errorf("expected caret at %d, got %d", expected, fs.caret)
	}
	return nil
}

func (fs *fieldState) phoneFieldIsFocused() error {
	fs.phoneRaw = domain.PhoneFieldSeed
	fs.shown = domain.FormatPhoneInput(fs.phoneRaw)
	return nil
}

func (fs *fieldState) phoneIsTyped(raw string) error {
	fs.phoneRaw = raw
	fs.shown = domain.FormatPhoneInput(raw)
	return nil
}

func (fs *fieldState) phoneIs(verdict string) error {
	return checkVerdict(verdict, domain.IsValidPhone(fs.shown), fs.shown)
}

func (fs *fieldState) anEmptyCart() error {
	fs.notified = 0
	fs.cart = domain.NewCart(func(domain.CartSnapshot) { fs.notified++ })
	return nil
}

func (fs *fieldState) iAddTheExam(id string) error {
	exam, ok := fs.catalog.Exam(id)
	if !ok {
		return fmt.Errorf("exam %q not in catalog", id)
	}
	fs.cart.AddItem(exam)
	return nil
}

func (fs *fieldState) iClearTheCart() error {
	fs.cart.Clear()
	return nil
}

func (fs *fieldState) theCartHolds(count int) error {
	if got := fs.cart.Count(); got != count {
		return fmt.Errorf("expected %d exams, got %d", count, got)
	}
	return nil
}

func (fs *fieldState) theCartTotalReads(expected string) error {
	if got := fs.cart.Snapshot().TotalDisplay(); got != expected {
		return fmt.Errorf("expected total %q, got %q", expected, got)
	}
	return nil
}

func (fs *fieldState) theCartWasNotified(times int) error {
	if fs.notified != times {
		return fmt.Errorf("expected %d notifications, got %d", times, fs.notified)
	}
	return nil
}

func checkVerdict(verdict string, valid bool, value string) error {
	if (verdict == "valid") != valid {
		return fmt.Errorf("expected %q to be %s", value, verdict)
	}
	return nil
}

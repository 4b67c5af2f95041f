package content

import (
	"strings"
	"testing"
)

func TestGenerateShareLinks_Expansion(t *testing.T) {
	providers := []ShareProvider{
		{Name: "X", Template: "https://x.com/intent?text={TEXT}&url={URL}"},
	}

	links := GenerateShareLinks(providers, "https://a.com", "title", "Hi", nil)
	if len(links) != 1 {
		t.Fatalf("expected one link, got %d", len(links))
	}
	if links[0].ProviderName != "X" {
		t.Fatalf("expected provider name preserved, got %q", links[0].ProviderName)
	}
	want := "https://x.com/intent?text=Hi&url=https%3A%2F%2Fa.com"
	if links[0].URL != want {
		t.Fatalf("expected %q, got %q", want, links[0].URL)
	}
}

func TestGenerateShareLinks_TagsFormatting(t *testing.T) {
	providers := []ShareProvider{
		{Name: "X", Template: "https://x.com/share?tags={TAGS}"},
	}

	links := GenerateShareLinks(providers, "", "", "", []string{"go", "my tag"})
	// "#go #my_tag" percent-encoded.
	want := "https://x.com/share?tags=%23go%20%23my_tag"
	if links[0].URL != want {
		t.Fatalf("expected %q, got %q", want, links[0].URL)
	}
}

func TestGenerateShareLinks_MissingURLEncodesEmpty(t *testing.T) {
	providers := []ShareProvider{
		{Name: "X", Template: "https://x.com/share?url={URL}&t={TITLE}"},
	}

	links := GenerateShareLinks(providers, "", "A Title", "", nil)
	want := "https://x.com/share?url=&t=A%20Title"
	if links[0].URL != want {
		t.Fatalf("expected %q, got %q", want, links[0].URL)
	}
}

func TestGenerateShareLinks_TemplateWithoutPlaceholders(t *testing.T) {
	providers := []ShareProvider{
		{Name: "Plain", Template: "https://example.com/share"},
	}

	links := GenerateShareLinks(providers, "https://a.com", "t", "x", []string{"a"})
	if links[0].URL != "https://example.com/share" {
		t.Fatalf("expected template passed through unchanged, got %q", links[0].URL)
	}
}

func TestGenerateShareLinks_PreservesProviderOrder(t *testing.T) {
	providers := []ShareProvider{
		{Name: "B", Template: "https://b.example/{TITLE}"},
		{Name: "A", Template: "https://a.example/{TITLE}"},
	}

	links := GenerateShareLinks(providers, "", "t", "", nil)
	if links[0].ProviderName != "B" || links[1].ProviderName != "A" {
		t.Fatalf("expected input order preserved, got %v", links)
	}
	if !strings.HasPrefix(links[0].URL, "https://b.example/") {
		t.Fatalf("unexpected URL %q", links[0].URL)
	}
}

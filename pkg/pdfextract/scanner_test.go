package pdfextract

import (
	"strings"
	"testing"

	"github.com/rajeshr264/puppet-llm-training-project/models"
)

func feedLines(b *blockScanner, page int, lines ...string) {
	for _, line := range lines {
		b.feed(line, page)
	}
}

func TestScannerExtractsBlock(t *testing.T) {
	b := &blockScanner{}
	feedLines(b, 3,
		"Chapter 2 Managing Services",
		"The following example manages Apache.",
		"class apache {",
		"  package { 'apache2':",
		"    ensure => installed,",
		"  }",
		"}",
		"This prose line ends the block.",
	)

	if len(b.examples) != 1 {
		t.Fatalf("got %d examples, want 1", len(b.examples))
	}
	ex := b.examples[0]
	if !strings.HasPrefix(ex.Code, "class apache {") {
		t.Errorf("Code = %q, want the apache block", ex.Code)
	}
	if ex.Description != "From Chapter 2 Managing Services on page 3" {
		t.Errorf("Description = %q", ex.Description)
	}
	if ex.Source != "PDF page 3" {
		t.Errorf("Source = %q", ex.Source)
	}
	if ex.Origin != models.OriginPDFBlock {
		t.Errorf("Origin = %q, want %q", ex.Origin, models.OriginPDFBlock)
	}
}

func TestScannerRejectsShortBlocks(t *testing.T) {
	b := &blockScanner{}
	feedLines(b, 1,
		"class a {",
		"}",
		"prose ends it",
	)

	if len(b.examples) != 0 {
		t.Errorf("got %d examples, want 0 (block too short)", len(b.examples))
	}
}

func TestScannerRejectsBlockWithoutPuppetSyntax(t *testing.T) {
	b := &blockScanner{}
	// Looks like indented continuation lines but carries no arrows,
	// and the opener keyword is swallowed by the fresh-buffer rule.
	feedLines(b, 1,
		"node alpha cluster configuration overview",
		"  first continuation line of plain indented text here",
		"  second continuation line of plain indented text here",
		"  third continuation line of plain indented text here",
		"prose ends it",
	)

	if len(b.examples) != 0 {
		t.Errorf("got %d examples, want 0 (no Puppet syntax)", len(b.examples))
	}
}

func TestScannerOpenerRestartsBuffer(t *testing.T) {
	b := &blockScanner{}
	feedLines(b, 2,
		"class outer {",
		"  x => 1,",
		"service { 'nginx':",
		"  ensure => running,",
		"  enable => true,",
		"}",
		"prose ends it",
	)

	if len(b.examples) != 1 {
		t.Fatalf("got %d examples, want 1", len(b.examples))
	}
	if !strings.HasPrefix(b.examples[0].Code, "service { 'nginx':") {
		t.Errorf("Code = %q, want the restarted service block", b.examples[0].Code)
	}
}

func TestScannerFinishClosesOpenBlock(t *testing.T) {
	b := &blockScanner{}
	feedLines(b, 7,
		"class mysql {",
		"  package { 'mysql-server':",
		"    ensure => installed,",
		"  }",
		"}",
	)
	// Document ends while the block is still open
	b.finish(7)

	if len(b.examples) != 1 {
		t.Fatalf("got %d examples, want 1 after finish", len(b.examples))
	}
	if b.examples[0].Source != "PDF page 7" {
		t.Errorf("Source = %q, want last page", b.examples[0].Source)
	}
}

func TestScannerSectionTracking(t *testing.T) {
	b := &blockScanner{}
	feedLines(b, 1,
		"Section 4 Defined Types",
		"4.2 Creating users",
		"define create_user($uid) {",
		"  user { $name:",
		"    ensure => present,",
		"  }",
		"}",
		"prose ends it",
	)

	if len(b.examples) != 1 {
		t.Fatalf("got %d examples, want 1", len(b.examples))
	}
	if b.examples[0].Description != "From 4.2 Creating users on page 1" {
		t.Errorf("Description = %q, want most recent section header", b.examples[0].Description)
	}
}

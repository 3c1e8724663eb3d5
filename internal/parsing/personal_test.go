package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleResume = `John Smith
john.smith@example.com | (555) 123-4567
Austin, TX
https://linkedin.com/in/johnsmith
https://github.com/johnsmith
https://johnsmith.dev

Senior engineer with ten years of experience.`

func TestExtractPersonalInfo_FullHeader(t *testing.T) {
	info := ExtractPersonalInfo(sampleResume)

	assert.Equal(t, "John Smith", info.Name)
	assert.Equal(t, "john.smith@example.com", info.Email)
	assert.Equal(t, "(555) 123-4567", info.Phone)
	assert.Equal(t, "Austin, TX", info.Location)
	assert.Equal(t, "https://linkedin.com/in/johnsmith", info.LinkedIn)
	assert.Equal(t, "https://github.com/johnsmith", info.GitHub)
	assert.Equal(t, "https://johnsmith.dev", info.Portfolio)
}

func TestExtractName_SkipsContactFirstLine(t *testing.T) {
	text := "john@example.com\nJane Doe\nEngineer"
	info := ExtractPersonalInfo(text)
	assert.Equal(t, "Jane Doe", info.Name)
}

func TestExtractName_ThreeTokens(t *testing.T) {
	text := "+1 555-123-4567\nMary Jane Watson\n"
	info := ExtractPersonalInfo(text)
	assert.Equal(t, "Mary Jane Watson", info.Name)
}

func TestExtractName_NoMatchIsEmpty(t *testing.T) {
	text := "john@example.com\n555-123-4567\nhttp://example.com"
	info := ExtractPersonalInfo(text)
	assert.Equal(t, "", info.Name)
}

func TestExtractPhone_BareTenDigits(t *testing.T) {
	info := ExtractPersonalInfo("Contact: 5551234567 anytime")
	assert.Equal(t, "5551234567", info.Phone)
}

func TestExtractPhone_Grouped(t *testing.T) {
	info := ExtractPersonalInfo("call 555.123.4567")
	assert.Equal(t, "555.123.4567", info.Phone)
}

func TestExtractPhone_NoMatchIsEmpty(t *testing.T) {
	info := ExtractPersonalInfo("no numbers here")
	assert.Equal(t, "", info.Phone)
}

func TestExtractPortfolio_SkipsSocialDomains(t *testing.T) {
	text := "https://www.linkedin.com/in/x https://twitter.com/x https://portfolio.example.org/work"
	info := ExtractPersonalInfo(text)
	assert.Equal(t, "https://portfolio.example.org/work", info.Portfolio)
}

func TestExtractPortfolio_NoneWhenOnlySocial(t *testing.T) {
	text := "https://github.com/someone https://facebook.com/someone"
	info := ExtractPersonalInfo(text)
	assert.Equal(t, "", info.Portfolio)
}

func TestExtractLocation_CityCountry(t *testing.T) {
	info := ExtractPersonalInfo("based in Berlin, Germany since 2019")
	assert.Equal(t, "Berlin, Germany", info.Location)
}

func TestExtractLocation_CityStateZip(t *testing.T) {
	info := ExtractPersonalInfo("mailing address Portland OR 97201")
	assert.Equal(t, "Portland OR 97201", info.Location)
}

func TestExtractPersonalInfo_EmptyInput(t *testing.T) {
	info := ExtractPersonalInfo("")
	assert.Equal(t, "", info.Name)
	assert.Equal(t, "", info.Email)
	assert.Equal(t, "", info.Phone)
}

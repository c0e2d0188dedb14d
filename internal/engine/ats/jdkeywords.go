package ats

import (
	"regexp"
	"strings"
)

const (
	maxKeywords   = 40
	maxKeywordLen = 40
)

// knownVocabulary is the curated high-precision term list scanned against
// every JD: cloud platforms, languages, frameworks, datastores, protocols,
// and methodologies. Matching goes through ContainsKeyword, so synonym
// variants ("k8s", "microsoft azure") count as hits for their canonical term.
var knownVocabulary = []string{
	// languages
	"python", "java", "javascript", "typescript", "golang", "c#", "c++",
	"rust", "ruby", "php", "kotlin", "swift", "scala", "sql", "bash", "r",
	// web / frameworks
	"react", "angular", "vue", "next.js", "node.js", "django", "flask",
	"spring", "spring boot", ".net", "asp.net", "rails", "laravel",
	"express", "fastapi", "html", "css", "tailwind",
	// cloud / infra
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "ansible",
	"jenkins", "github actions", "gitlab ci", "ci/cd", "linux", "nginx",
	"serverless", "lambda", "cloudformation", "helm", "prometheus",
	"grafana", "datadog",
	// data
	"postgresql", "mysql", "sql server", "mongodb", "redis", "elasticsearch",
	"kafka", "rabbitmq", "spark", "hadoop", "snowflake", "bigquery",
	"dynamodb", "cassandra", "etl", "airflow", "dbt",
	// practices / protocols
	"rest", "graphql", "grpc", "microservices", "oauth", "websockets",
	"agile", "scrum", "kanban", "tdd", "unit testing", "git", "jira",
	"machine learning", "deep learning", "nlp", "computer vision",
	"data analysis", "devops", "sre", "observability", "security",
	"oop", "design patterns", "distributed systems", "api design",
	"accessibility", "performance optimization",
}

// boilerplatePhrases is the denylist of generic HR/JD language the heuristic
// chunk pass must not surface as "keywords". Substring-matched on the
// normalized chunk. Necessarily incomplete; extend only against a corpus of
// real job descriptions, not ad hoc.
var boilerplatePhrases = []string{
	"ability to", "experience with", "experience in", "years of",
	"responsibilities", "requirements", "qualifications", "qualification",
	"benefits", "we offer", "you will", "you are", "who you are",
	"what you", "about us", "about the", "who we are", "our team",
	"the role", "this role", "the ideal", "ideal candidate",
	"nice to have", "preferred", "bonus points", "a plus",
	"communication skills", "team player", "self starter", "fast paced",
	"problem solving", "attention to detail", "detail oriented",
	"strong", "excellent", "proven", "passionate", "motivated",
	"competitive salary", "equal opportunity", "apply now", "join us",
	"full time", "part time", "remote", "hybrid", "on site", "onsite",
	"including", "such as", "etc", "and more", "related field",
	"degree in", "bachelor", "equivalent experience",
}

var (
	// chunkSplitRe breaks JD text into candidate chunks at newlines, commas,
	// semicolons, and common bullet glyphs.
	chunkSplitRe = regexp.MustCompile(`[\n,;•●▪◦·]+`)

	// bulletPrefixRe strips leading list markers from a chunk.
	bulletPrefixRe = regexp.MustCompile(`^[\s\-*+>–—]+|^\(?\d+[.)]\s*`)

	// durationRe rejects duration phrases like "3 years" or "6+ months".
	durationRe = regexp.MustCompile(`^\d+\s*\+?\s*(?:years?|yrs?|months?)\b`)

	// techCueRe marks chunks that read as technical terms even without
	// punctuation cues.
	techCueRe = regexp.MustCompile(`(?i)\b(api|apis|sdk|cli|sql|nosql|db|database|cloud|saas|devops|docker|kubernetes|aws|azure|gcp|linux|unix|git|http|https|grpc|rest|json|xml|yaml|html|css|js|etl|ml|ai|llm|kafka|redis|react|node|python|java|golang|rust|php|ruby|swift|kotlin|scala|terraform|ansible|jenkins|agile|scrum|microservices|frontend|backend|fullstack|testing|automation|analytics|pipeline|orchestration|monitoring|encryption|authentication)\b`)

	// technicalCharRe: chunks containing chars typical of tech notation
	// ("c++", ".net", "ci/cd", "f#") pass without a vocabulary cue.
	technicalCharRe = regexp.MustCompile(`[+#/]|\.\w`)
)

// ExtractJDKeywords mines a job description for skill/technology keywords.
// Two passes, unioned: a known-vocabulary scan (high precision for common
// stack terms) and a heuristic chunk scan that recovers JD-specific terms
// the static list can't anticipate. Deduplicated, capped at 40 keywords of
// at most 40 characters each.
func ExtractJDKeywords(jdText string) []string {
	vocab, heuristic := ExtractJDKeywordsByPass(jdText)
	keywords := make([]string, 0, len(vocab)+len(heuristic))
	keywords = append(keywords, vocab...)
	return append(keywords, heuristic...)
}

// ExtractJDKeywordsByPass runs both mining passes and reports their hits
// separately. The 40-keyword cap applies to the union, vocabulary hits first;
// a term found by both passes is credited to the vocabulary pass only.
func ExtractJDKeywordsByPass(jdText string) (vocabulary, heuristic []string) {
	vocabulary = []string{}
	heuristic = []string{}
	if strings.TrimSpace(jdText) == "" {
		return vocabulary, heuristic
	}
	norm := Normalize(jdText)

	seen := make(map[string]bool)
	total := 0
	add := func(dst *[]string, kw string) {
		kw = Normalize(kw)
		if kw == "" || len(kw) > maxKeywordLen || seen[kw] {
			return
		}
		seen[kw] = true
		*dst = append(*dst, kw)
		total++
	}

	// Pass 1: curated vocabulary.
	for _, term := range knownVocabulary {
		if total >= maxKeywords {
			break
		}
		if ContainsKeyword(norm, term) {
			add(&vocabulary, term)
		}
	}

	// Pass 2: heuristic chunks.
	for _, chunk := range chunkSplitRe.Split(jdText, -1) {
		if total >= maxKeywords {
			break
		}
		if kw, ok := keywordFromChunk(chunk); ok {
			add(&heuristic, kw)
		}
	}

	return vocabulary, heuristic
}

// keywordFromChunk decides whether a single JD chunk looks like a concrete
// skill/technology term rather than boilerplate.
func keywordFromChunk(chunk string) (string, bool) {
	chunk = bulletPrefixRe.ReplaceAllString(strings.TrimSpace(chunk), "")
	chunk = strings.TrimRight(chunk, ".:;,!? \t")
	if len(chunk) < 2 || len(chunk) > maxKeywordLen {
		return "", false
	}

	norm := Normalize(chunk)
	if norm == "" || len(norm) < 2 || len(norm) > maxKeywordLen {
		return "", false
	}
	if len(strings.Fields(norm)) > 3 {
		return "", false
	}
	if durationRe.MatchString(norm) {
		return "", false
	}
	for _, phrase := range boilerplatePhrases {
		if strings.Contains(norm, phrase) {
			return "", false
		}
	}
	if !technicalCharRe.MatchString(norm) && !techCueRe.MatchString(norm) {
		return "", false
	}
	return norm, true
}

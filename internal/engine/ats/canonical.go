package ats

import "sort"

// variantGroups is the synonym/abbreviation thesaurus. Each group lists
// terms that count as equivalent for matching: a keyword normalizing to any
// member expands to the whole group. Adding a synonym is a data change:
// append to a group or add a new one; no code changes.
var variantGroups = [][]string{
	{"kubernetes", "k8s"},
	{"docker", "containers", "containerization"},
	{"azure", "microsoft azure"},
	{"aws", "amazon web services"},
	{"gcp", "google cloud", "google cloud platform"},
	{"ci/cd", "cicd", "continuous integration", "continuous delivery", "continuous deployment"},
	{".net", ".net core", ".net 8", "dotnet", "asp.net", "asp.net core"},
	{"c#", "csharp"},
	{"golang", "go"},
	{"javascript", "js", "ecmascript"},
	{"typescript", "ts"},
	{"node.js", "nodejs", "node"},
	{"react", "reactjs", "react.js"},
	{"vue", "vuejs", "vue.js"},
	{"angular", "angularjs"},
	{"next.js", "nextjs"},
	{"postgresql", "postgres"},
	{"sql server", "mssql", "microsoft sql server"},
	{"mongodb", "mongo"},
	{"elasticsearch", "elastic search"},
	{"rabbitmq", "rabbit mq"},
	{"rest", "restful", "rest api", "rest apis"},
	{"grpc", "grpc-go"},
	{"graphql", "graph ql"},
	{"terraform", "infrastructure as code", "iac"},
	{"machine learning", "ml"},
	{"artificial intelligence", "ai"},
	{"natural language processing", "nlp"},
	{"microservices", "microservice", "micro-services"},
	{"object oriented programming", "oop", "object-oriented"},
	{"test driven development", "tdd"},
	{"github actions", "gh actions"},
	{"google kubernetes engine", "gke"},
	{"amazon s3", "s3"},
	{"unit testing", "unit tests"},
	{"html", "html5"},
	{"css", "css3"},
	{"scrum", "agile/scrum"},
}

// variantIndex maps each normalized member to its full group.
var variantIndex = buildVariantIndex()

func buildVariantIndex() map[string][]string {
	idx := make(map[string][]string)
	for _, group := range variantGroups {
		for _, member := range group {
			idx[Normalize(member)] = group
		}
	}
	return idx
}

// VariantsOf expands a keyword into its known synonym/abbreviation set.
// The normalized keyword itself is always included; rules are declarative
// and order-independent. Output is sorted for determinism.
func VariantsOf(keyword string) []string {
	norm := Normalize(keyword)
	if norm == "" {
		return nil
	}
	set := map[string]bool{norm: true}
	if group, ok := variantIndex[norm]; ok {
		for _, v := range group {
			set[Normalize(v)] = true
		}
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

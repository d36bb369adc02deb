//nolint:revive // Struct field names match API responses
package leetcode

import (
	"fmt"
	"strings"
)

// CodeSnippet is the starter code for one language
type CodeSnippet struct {
	Lang     string `json:"lang"`
	LangSlug string `json:"langSlug"`
	Code     string `json:"code"`
}

// Question is the normalized problem record
type Question struct {
	QuestionId            string
	QuestionTitle         string
	QuestionTitleNoSpaces string
	ExampleTestCases      string
	CodeSnippets          []CodeSnippet
}

// GraphQLError is one entry of a GraphQL "errors" array
type GraphQLError struct {
	Message   string   `json:"message"`
	Path      []any    `json:"path,omitempty"`
	Locations []struct {
		Line   int `json:"line"`
		Column int `json:"column"`
	} `json:"locations,omitempty"`
}

// APIError carries the errors array returned by the endpoint
type APIError struct {
	Errors []GraphQLError
}

func (e *APIError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		msgs = append(msgs, err.Message)
	}
	return fmt.Sprintf("%d error(s): %s", len(e.Errors), strings.Join(msgs, "; "))
}

type questionData struct {
	QuestionFrontendId  string        `json:"questionFrontendId"`
	Title               string        `json:"title"`
	ExampleTestcaseList []string      `json:"exampleTestcaseList"`
	CodeSnippets        []CodeSnippet `json:"codeSnippets"`
}

type graphQLRequest struct {
	OperationName string         `json:"operationName"`
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables"`
}

type graphQLResponse struct {
	Data *struct {
		Question *questionData `json:"question"`
	} `json:"data"`
	Errors []GraphQLError `json:"errors"`
}

// normalize turns the wire shape into a Question
func (q *questionData) normalize() *Question {
	snippets := q.CodeSnippets
	if snippets == nil {
		snippets = []CodeSnippet{}
	}
	return &Question{
		QuestionId:            q.QuestionFrontendId,
		QuestionTitle:         q.Title,
		QuestionTitleNoSpaces: strings.ReplaceAll(q.Title, " ", ""),
		ExampleTestCases:      strings.Join(q.ExampleTestcaseList, "\n"),
		CodeSnippets:          snippets,
	}
}

package services

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"strive_server/models"
)

// listQuery describes an owner-scoped prefix query. The partition key is
// always derived from the verified caller, never from client arguments.
type listQuery struct {
	Table    string
	PK       string
	Prefix   string
	Statuses []string          // equality when one value, IN when several
	Equals   map[string]string // extra equality filters on plain attributes
	Contains map[string]string // membership filters on list attributes
	Limit    int
	SortBy   string
}

// clampLimit applies the hard ceiling that protects against unbounded scans.
func clampLimit(limit int) int32 {
	if limit <= 0 || limit > models.MaxQueryLimit {
		return int32(models.MaxQueryLimit)
	}
	return int32(limit)
}

// sortDirection maps a sortBy suffix onto the scan direction. Unrecognized
// values default to ascending.
func sortDirection(sortBy string) bool {
	return !strings.HasSuffix(sortBy, "-desc")
}

// splitSortBy separates "deadline-asc" into its field and direction.
func splitSortBy(sortBy string) (field string, descending bool) {
	if f, ok := strings.CutSuffix(sortBy, "-desc"); ok {
		return f, true
	}
	if f, ok := strings.CutSuffix(sortBy, "-asc"); ok {
		return f, false
	}
	return sortBy, false
}

// build assembles the QueryInput. Reads are always eventually consistent; no
// operation in this layer requests strong consistency.
func (q listQuery) build() *dynamodb.QueryInput {
	keyCondition := "#pk = :pk AND begins_with(#sk, :prefix)"
	names := map[string]string{
		"#pk": models.AttrPK,
		"#sk": models.AttrSK,
	}
	values := map[string]types.AttributeValue{
		":pk":     &types.AttributeValueMemberS{Value: q.PK},
		":prefix": &types.AttributeValueMemberS{Value: q.Prefix},
	}

	var filters []string
	switch {
	case len(q.Statuses) == 1:
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: q.Statuses[0]}
		filters = append(filters, "#status = :status")
	case len(q.Statuses) > 1:
		names["#status"] = "status"
		placeholders := make([]string, len(q.Statuses))
		for i, status := range q.Statuses {
			placeholder := fmt.Sprintf(":status%d", i)
			values[placeholder] = &types.AttributeValueMemberS{Value: status}
			placeholders[i] = placeholder
		}
		filters = append(filters, fmt.Sprintf("#status IN (%s)", strings.Join(placeholders, ", ")))
	}

	for attr, value := range q.Equals {
		names["#"+attr] = attr
		values[":"+attr] = &types.AttributeValueMemberS{Value: value}
		filters = append(filters, fmt.Sprintf("#%s = :%s", attr, attr))
	}

	for attr, value := range q.Contains {
		names["#"+attr] = attr
		values[":"+attr] = &types.AttributeValueMemberS{Value: value}
		filters = append(filters, fmt.Sprintf("contains(#%s, :%s)", attr, attr))
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(q.Table),
		KeyConditionExpression:    aws.String(keyCondition),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		Limit:                     aws.Int32(clampLimit(q.Limit)),
		ScanIndexForward:          aws.Bool(sortDirection(q.SortBy)),
		ConsistentRead:            aws.Bool(false),
	}
	if len(filters) > 0 {
		input.FilterExpression = aws.String(strings.Join(filters, " AND "))
	}
	return input
}

package services

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"strive_server/models"
)

// fakeDynamo is an in-memory DynamoAPI covering exactly the access patterns
// this layer builds: key get/put/delete, prefix queries with simple filters,
// SET/ADD/if_not_exists updates and condition-check+put transactions.
type fakeDynamo struct {
	mu     sync.Mutex
	tables map[string]map[string]map[string]types.AttributeValue
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: map[string]map[string]map[string]types.AttributeValue{}}
}

func itemKey(item map[string]types.AttributeValue) string {
	return stringAttr(item, models.AttrPK) + "|" + stringAttr(item, models.AttrSK)
}

func stringAttr(item map[string]types.AttributeValue, name string) string {
	if v, ok := item[name].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func (f *fakeDynamo) table(name string) map[string]map[string]types.AttributeValue {
	if f.tables[name] == nil {
		f.tables[name] = map[string]map[string]types.AttributeValue{}
	}
	return f.tables[name]
}

func copyItem(item map[string]types.AttributeValue) map[string]types.AttributeValue {
	out := make(map[string]types.AttributeValue, len(item))
	for k, v := range item {
		out[k] = v
	}
	return out
}

// count returns how many items in a table carry the given sort-key prefix.
func (f *fakeDynamo) count(tableName, skPrefix string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, item := range f.table(tableName) {
		if strings.HasPrefix(stringAttr(item, models.AttrSK), skPrefix) {
			n++
		}
	}
	return n
}

func (f *fakeDynamo) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item, ok := f.table(*params.TableName)[itemKey(params.Key)]
	if !ok {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: copyItem(item)}, nil
}

func (f *fakeDynamo) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.table(*params.TableName)[itemKey(params.Item)] = copyItem(params.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.table(*params.TableName), itemKey(params.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	pk := stringAttr(params.ExpressionAttributeValues, ":pk")
	prefix := stringAttr(params.ExpressionAttributeValues, ":prefix")

	var matched []map[string]types.AttributeValue
	for _, item := range f.table(*params.TableName) {
		if stringAttr(item, models.AttrPK) != pk {
			continue
		}
		if prefix != "" && !strings.HasPrefix(stringAttr(item, models.AttrSK), prefix) {
			continue
		}
		matched = append(matched, copyItem(item))
	}

	sort.Slice(matched, func(i, j int) bool {
		return stringAttr(matched[i], models.AttrSK) < stringAttr(matched[j], models.AttrSK)
	})
	if params.ScanIndexForward != nil && !*params.ScanIndexForward {
		for i, j := 0, len(matched)-1; i < j; i, j = i+1, j-1 {
			matched[i], matched[j] = matched[j], matched[i]
		}
	}

	// DynamoDB applies the limit before the filter expression.
	if params.Limit != nil && len(matched) > int(*params.Limit) {
		matched = matched[:*params.Limit]
	}

	if params.FilterExpression != nil {
		var kept []map[string]types.AttributeValue
		for _, item := range matched {
			if evalFilter(item, *params.FilterExpression, params.ExpressionAttributeNames, params.ExpressionAttributeValues) {
				kept = append(kept, item)
			}
		}
		matched = kept
	}

	return &dynamodb.QueryOutput{Items: matched, Count: int32(len(matched))}, nil
}

func (f *fakeDynamo) UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	tbl := f.table(*params.TableName)
	key := itemKey(params.Key)
	item, ok := tbl[key]
	if !ok {
		item = copyItem(params.Key)
	} else {
		item = copyItem(item)
	}

	applyUpdateExpression(item, *params.UpdateExpression, params.ExpressionAttributeNames, params.ExpressionAttributeValues)
	tbl[key] = item

	return &dynamodb.UpdateItemOutput{Attributes: copyItem(item)}, nil
}

func (f *fakeDynamo) TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	reasons := make([]types.CancellationReason, len(params.TransactItems))
	failed := false
	for i, item := range params.TransactItems {
		reasons[i] = types.CancellationReason{Code: aws.String("None")}
		if item.ConditionCheck != nil {
			if _, ok := f.table(*item.ConditionCheck.TableName)[itemKey(item.ConditionCheck.Key)]; !ok {
				reasons[i] = types.CancellationReason{Code: aws.String("ConditionalCheckFailed")}
				failed = true
			}
		}
	}
	if failed {
		return nil, &types.TransactionCanceledException{
			Message:             aws.String("Transaction cancelled"),
			CancellationReasons: reasons,
		}
	}

	for _, item := range params.TransactItems {
		if item.Put != nil {
			f.table(*item.Put.TableName)[itemKey(item.Put.Item)] = copyItem(item.Put.Item)
		}
		if item.Delete != nil {
			delete(f.table(*item.Delete.TableName), itemKey(item.Delete.Key))
		}
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}

// splitClauses splits on top-level commas, leaving function calls intact.
func splitClauses(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	parts = append(parts, strings.TrimSpace(s[start:]))
	return parts
}

func resolveName(placeholder string, names map[string]string) string {
	if name, ok := names[placeholder]; ok {
		return name
	}
	return strings.TrimPrefix(placeholder, "#")
}

func evalFilter(item map[string]types.AttributeValue, expr string, names map[string]string, values map[string]types.AttributeValue) bool {
	for _, clause := range strings.Split(expr, " AND ") {
		clause = strings.TrimSpace(clause)
		switch {
		case strings.HasPrefix(clause, "contains("):
			inner := strings.TrimSuffix(strings.TrimPrefix(clause, "contains("), ")")
			parts := splitClauses(inner)
			attr := resolveName(parts[0], names)
			want := stringAttr(values, parts[1])
			list, ok := item[attr].(*types.AttributeValueMemberL)
			if !ok {
				return false
			}
			found := false
			for _, member := range list.Value {
				if s, ok := member.(*types.AttributeValueMemberS); ok && s.Value == want {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		case strings.Contains(clause, " IN ("):
			lhs, rhs, _ := strings.Cut(clause, " IN (")
			attr := resolveName(strings.TrimSpace(lhs), names)
			got := stringAttr(item, attr)
			found := false
			for _, placeholder := range splitClauses(strings.TrimSuffix(rhs, ")")) {
				if stringAttr(values, placeholder) == got {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		case strings.Contains(clause, " = "):
			lhs, rhs, _ := strings.Cut(clause, " = ")
			attr := resolveName(strings.TrimSpace(lhs), names)
			if stringAttr(item, attr) != stringAttr(values, strings.TrimSpace(rhs)) {
				return false
			}
		}
	}
	return true
}

func applyUpdateExpression(item map[string]types.AttributeValue, expr string, names map[string]string, values map[string]types.AttributeValue) {
	addPart, setPart := "", ""
	if rest, ok := strings.CutPrefix(expr, "ADD "); ok {
		if before, after, found := strings.Cut(rest, " SET "); found {
			addPart, setPart = before, after
		} else {
			addPart = rest
		}
	} else if rest, ok := strings.CutPrefix(expr, "SET "); ok {
		setPart = rest
	}

	for _, clause := range splitClauses(addPart) {
		if clause == "" {
			continue
		}
		fields := strings.Fields(clause)
		attr := resolveName(fields[0], names)
		delta, _ := strconv.ParseInt(numberAttr(values, fields[1]), 10, 64)
		current, _ := strconv.ParseInt(numberAttr(item, attr), 10, 64)
		item[attr] = &types.AttributeValueMemberN{Value: strconv.FormatInt(current+delta, 10)}
	}

	for _, clause := range splitClauses(setPart) {
		if clause == "" {
			continue
		}
		lhs, rhs, _ := strings.Cut(clause, " = ")
		attr := resolveName(strings.TrimSpace(lhs), names)
		rhs = strings.TrimSpace(rhs)
		if strings.HasPrefix(rhs, "if_not_exists(") {
			inner := strings.TrimSuffix(strings.TrimPrefix(rhs, "if_not_exists("), ")")
			parts := splitClauses(inner)
			if _, exists := item[attr]; !exists {
				item[attr] = values[parts[1]]
			}
			continue
		}
		item[attr] = values[rhs]
	}
}

func numberAttr(item map[string]types.AttributeValue, name string) string {
	if v, ok := item[name].(*types.AttributeValueMemberN); ok {
		return v.Value
	}
	return "0"
}

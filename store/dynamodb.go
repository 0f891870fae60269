package store

import (
	"context"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sicko7947/gotodo"
)

// DynamoDBStore implements gotodo.TodoStore using AWS DynamoDB.
//
// DynamoDB has no native insertion order, so the store allocates a monotonic
// sequence number from an atomic counter item the first time a key is
// written and keeps that sequence across updates. The list index (GSI1) is
// keyed by the sequence, which makes Query iterate records in insertion
// order.
type DynamoDBStore struct {
	client    DynamoDBClient
	tableName string
}

// NewDynamoDBStore creates a new DynamoDB-backed todo store
func NewDynamoDBStore(client DynamoDBClient, tableName string) gotodo.TodoStore {
	return &DynamoDBStore{
		client:    client,
		tableName: tableName,
	}
}

func (s *DynamoDBStore) Put(ctx context.Context, todo *gotodo.Todo) error {
	// Reuse the existing sequence on update so iteration position is
	// stable; allocate the next one on first insert.
	seq, exists, err := s.currentSeq(ctx, todo.ID)
	if err != nil {
		return err
	}
	if !exists {
		seq, err = s.nextSeq(ctx)
		if err != nil {
			return err
		}
	}

	// Marshal the todo
	item, err := attributevalue.MarshalMap(todo)
	if err != nil {
		return gotodo.NewInternalError("failed to marshal todo", err)
	}

	// Add keys
	item[AttrPK] = &types.AttributeValueMemberS{Value: todoPK(todo.ID)}
	item[AttrSK] = &types.AttributeValueMemberS{Value: todoSK()}
	item[AttrEntityType] = &types.AttributeValueMemberS{Value: EntityTypeTodo}
	item[AttrSeq] = &types.AttributeValueMemberN{Value: strconv.FormatUint(seq, 10)}

	// Add GSI keys
	item[AttrGSI1PK] = &types.AttributeValueMemberS{Value: todoGSI1PK()}
	item[AttrGSI1SK] = &types.AttributeValueMemberS{Value: todoGSI1SK(seq)}

	// Put item
	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})
	if err != nil {
		return gotodo.NewInternalError("failed to put todo", err)
	}

	return nil
}

func (s *DynamoDBStore) Get(ctx context.Context, id uint32) (*gotodo.Todo, error) {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			AttrPK: &types.AttributeValueMemberS{Value: todoPK(id)},
			AttrSK: &types.AttributeValueMemberS{Value: todoSK()},
		},
	})
	if err != nil {
		return nil, gotodo.NewInternalError("failed to get todo", err)
	}

	if result.Item == nil {
		return nil, gotodo.NewNotFoundError(id)
	}

	var todo gotodo.Todo
	if err := attributevalue.UnmarshalMap(result.Item, &todo); err != nil {
		return nil, gotodo.NewInternalError("failed to unmarshal todo", err)
	}

	return &todo, nil
}

func (s *DynamoDBStore) List(ctx context.Context, offset, limit uint32) ([]*gotodo.Todo, error) {
	todos := make([]*gotodo.Todo, 0, limit)
	var skipped uint32
	var lastEvaluatedKey map[string]types.AttributeValue

	// Walk the list index in sequence order, skipping offset records and
	// stopping once the page is full.
	for {
		queryInput := &dynamodb.QueryInput{
			TableName:              aws.String(s.tableName),
			IndexName:              aws.String(IndexListIndex),
			KeyConditionExpression: aws.String("GSI1PK = :pk"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pk": &types.AttributeValueMemberS{Value: todoGSI1PK()},
			},
		}

		if lastEvaluatedKey != nil {
			queryInput.ExclusiveStartKey = lastEvaluatedKey
		}

		result, err := s.client.Query(ctx, queryInput)
		if err != nil {
			return nil, gotodo.NewInternalError("failed to list todos", err)
		}

		for _, item := range result.Items {
			if skipped < offset {
				skipped++
				continue
			}
			if uint32(len(todos)) >= limit {
				return todos, nil
			}

			var todo gotodo.Todo
			if err := attributevalue.UnmarshalMap(item, &todo); err != nil {
				return nil, gotodo.NewInternalError("failed to unmarshal todo", err)
			}
			todos = append(todos, &todo)
		}

		// Check if there are more results
		if result.LastEvaluatedKey == nil {
			break
		}
		lastEvaluatedKey = result.LastEvaluatedKey
	}

	return todos, nil
}

func (s *DynamoDBStore) Delete(ctx context.Context, id uint32) error {
	// DeleteItem succeeds whether or not the item exists, which matches
	// the store's idempotent delete contract.
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			AttrPK: &types.AttributeValueMemberS{Value: todoPK(id)},
			AttrSK: &types.AttributeValueMemberS{Value: todoSK()},
		},
	})
	if err != nil {
		return gotodo.NewInternalError("failed to delete todo", err)
	}

	return nil
}

func (s *DynamoDBStore) Len(ctx context.Context) (int, error) {
	count := 0
	var lastEvaluatedKey map[string]types.AttributeValue

	for {
		queryInput := &dynamodb.QueryInput{
			TableName:              aws.String(s.tableName),
			IndexName:              aws.String(IndexListIndex),
			KeyConditionExpression: aws.String("GSI1PK = :pk"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pk": &types.AttributeValueMemberS{Value: todoGSI1PK()},
			},
			Select: types.SelectCount,
		}

		if lastEvaluatedKey != nil {
			queryInput.ExclusiveStartKey = lastEvaluatedKey
		}

		result, err := s.client.Query(ctx, queryInput)
		if err != nil {
			return 0, gotodo.NewInternalError("failed to count todos", err)
		}

		count += int(result.Count)

		if result.LastEvaluatedKey == nil {
			break
		}
		lastEvaluatedKey = result.LastEvaluatedKey
	}

	return count, nil
}

// currentSeq looks up the sequence number already assigned to a key
func (s *DynamoDBStore) currentSeq(ctx context.Context, id uint32) (uint64, bool, error) {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			AttrPK: &types.AttributeValueMemberS{Value: todoPK(id)},
			AttrSK: &types.AttributeValueMemberS{Value: todoSK()},
		},
		ProjectionExpression: aws.String(AttrSeq),
	})
	if err != nil {
		return 0, false, gotodo.NewInternalError("failed to read todo sequence", err)
	}

	if result.Item == nil {
		return 0, false, nil
	}

	seqAttr, ok := result.Item[AttrSeq].(*types.AttributeValueMemberN)
	if !ok {
		return 0, false, gotodo.NewInternalError("todo item has no sequence attribute", nil)
	}

	seq, err := strconv.ParseUint(seqAttr.Value, 10, 64)
	if err != nil {
		return 0, false, gotodo.NewInternalError("failed to parse todo sequence", err)
	}

	return seq, true, nil
}

// nextSeq allocates the next insertion sequence with an atomic counter add
func (s *DynamoDBStore) nextSeq(ctx context.Context) (uint64, error) {
	result, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			AttrPK: &types.AttributeValueMemberS{Value: counterPK()},
			AttrSK: &types.AttributeValueMemberS{Value: counterSK()},
		},
		UpdateExpression: aws.String("ADD #seq :one SET #et = if_not_exists(#et, :et)"),
		ExpressionAttributeNames: map[string]string{
			"#seq": AttrSeq,
			"#et":  AttrEntityType,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
			":et":  &types.AttributeValueMemberS{Value: EntityTypeCounter},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, gotodo.NewInternalError("failed to allocate todo sequence", err)
	}

	seqAttr, ok := result.Attributes[AttrSeq].(*types.AttributeValueMemberN)
	if !ok {
		return 0, gotodo.NewInternalError("counter item returned no sequence", nil)
	}

	seq, err := strconv.ParseUint(seqAttr.Value, 10, 64)
	if err != nil {
		return 0, gotodo.NewInternalError("failed to parse allocated sequence", err)
	}

	return seq, nil
}

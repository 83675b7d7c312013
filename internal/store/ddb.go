// Package store batch-writes scraped rows to DynamoDB.
package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/tyler180/nba-roster-stats/internal/espn"
)

type DynamoDBAPI interface {
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

// Roster rows: PK=Team (S), SK=PlayerID (S). A Salary attribute is written
// only when the salary was disclosed, so an unpublished salary can never
// read back as zero.
func PutPlayerRows(ctx context.Context, ddb DynamoDBAPI, table string, players []espn.Player) error {
	if len(players) == 0 {
		return nil
	}
	const maxBatch = 25
	now := strconv.FormatInt(time.Now().Unix(), 10)

	for i := 0; i < len(players); i += maxBatch {
		end := i + maxBatch
		if end > len(players) {
			end = len(players)
		}

		reqs := make([]types.WriteRequest, 0, end-i)
		for _, p := range players[i:end] {
			if p.ID == "" || p.Team == "" {
				continue
			}
			item := map[string]types.AttributeValue{
				"Team":      &types.AttributeValueMemberS{Value: p.Team}, // PK
				"PlayerID":  &types.AttributeValueMemberS{Value: p.ID},   // SK
				"Name":      &types.AttributeValueMemberS{Value: p.Name},
				"Pos":       &types.AttributeValueMemberS{Value: p.Pos},
				"Age":       &types.AttributeValueMemberN{Value: strconv.Itoa(p.Age)},
				"Height":    &types.AttributeValueMemberS{Value: p.Height},
				"Weight":    &types.AttributeValueMemberS{Value: p.Weight},
				"College":   &types.AttributeValueMemberS{Value: p.College},
				"UpdatedAt": &types.AttributeValueMemberN{Value: now},
			}
			if p.Salary.Disclosed {
				item["Salary"] = &types.AttributeValueMemberN{Value: strconv.Itoa(p.Salary.Amount)}
			}
			reqs = append(reqs, types.WriteRequest{
				PutRequest: &types.PutRequest{Item: item},
			})
		}
		if len(reqs) == 0 {
			continue
		}
		if err := batchWriteWithRetry(ctx, ddb, table, reqs); err != nil {
			return fmt.Errorf("batch write player rows: %w", err)
		}
	}
	return nil
}

// Career rows: PK=PlayerID (S), one numeric attribute per stat column.
func PutCareerRows(ctx context.Context, ddb DynamoDBAPI, table string, rows []espn.CareerStats) error {
	if len(rows) == 0 {
		return nil
	}
	const maxBatch = 25
	now := strconv.FormatInt(time.Now().Unix(), 10)
	cols := espn.CareerColumns()

	for i := 0; i < len(rows); i += maxBatch {
		end := i + maxBatch
		if end > len(rows) {
			end = len(rows)
		}

		reqs := make([]types.WriteRequest, 0, end-i)
		for _, r := range rows[i:end] {
			if r.PlayerID == "" {
				continue
			}
			item := map[string]types.AttributeValue{
				"PlayerID":  &types.AttributeValueMemberS{Value: r.PlayerID},
				"UpdatedAt": &types.AttributeValueMemberN{Value: now},
			}
			for j, v := range r.Values() {
				item[cols[j]] = &types.AttributeValueMemberN{Value: strconv.FormatFloat(v, 'f', 1, 64)}
			}
			reqs = append(reqs, types.WriteRequest{
				PutRequest: &types.PutRequest{Item: item},
			})
		}
		if len(reqs) == 0 {
			continue
		}
		if err := batchWriteWithRetry(ctx, ddb, table, reqs); err != nil {
			return fmt.Errorf("batch write career rows: %w", err)
		}
	}
	return nil
}

func batchWriteWithRetry(ctx context.Context, ddb DynamoDBAPI, table string, reqs []types.WriteRequest) error {
	input := &dynamodb.BatchWriteItemInput{
		RequestItems: map[string][]types.WriteRequest{table: reqs},
	}
	const maxAttempts = 6
	backoff := 120 * time.Millisecond

	for attempt := 0; attempt < maxAttempts; attempt++ {
		out, err := ddb.BatchWriteItem(ctx, input)
		if err != nil {
			return err
		}
		if len(out.UnprocessedItems) == 0 {
			return nil
		}
		input.RequestItems = out.UnprocessedItems
		time.Sleep(backoff)
		if backoff < 2*time.Second {
			backoff += 120 * time.Millisecond
		}
	}
	return fmt.Errorf("unprocessed items remained after retries for table %s", table)
}

package db

import (
	"strconv"

	"github.com/jsphweid/partgen/constants"
	"github.com/jsphweid/partgen/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

// GetPieceMetadatas looks up title/composer/year for piece ids in the
// metadata table. DynamoDB caps BatchGetItem well above this, but callers
// only ever need a handful at a time.
func GetPieceMetadatas(pieceIDs []string) map[string]model.PieceMetadata {
	if len(pieceIDs) > 10 {
		panic("Not supposed to pass in more than 10 piece ids!")
	}

	res := make(map[string]model.PieceMetadata)

	if len(pieceIDs) == 0 {
		return res
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, id := range pieceIDs {
		key := make(map[string]*dynamodb.AttributeValue)
		key["PK"] = &dynamodb.AttributeValue{
			S: aws.String(id),
		}
		keys = append(keys, key)
	}

	endpoint := constants.GetMetadataEndpoint()
	session, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		panic("Could not create a new DynamoDB session because " + err.Error())
	}

	table := constants.GetMetadataTable()
	client := dynamodb.New(session)
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			table: {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		panic("Error from DynamoDB: " + err.Error())
	}

	for _, v := range dbres.Responses[table] {
		var m model.PieceMetadata
		if v["Year"] != nil && v["Year"].N != nil {
			year, _ := strconv.ParseUint(*v["Year"].N, 10, 32)
			m.Year = uint(year)
		}
		if v["Title"] != nil && v["Title"].S != nil {
			m.Title = *v["Title"].S
		}
		if v["Composer"] != nil && v["Composer"].S != nil {
			m.Composer = *v["Composer"].S
		}
		res[*v["PK"].S] = m
	}

	return res
}

package database

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Open connects to the hosted MongoDB cluster and verifies the
// connection with a ping. Credentials are URL-escaped so passwords with
// reserved characters survive the SRV URI.
func Open(user, pass, host, name string) (*mongo.Database, error) {
	auth := url.QueryEscape(user)
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", auth, url.QueryEscape(pass))
	}
	// retryWrites+majority matches the Atlas connection defaults.
	uri := fmt.Sprintf("mongodb+srv://%s@%s/?retryWrites=true&w=majority", auth, host)

	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)).
		SetTimeout(10 * time.Second)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, err
	}

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client.Database(name), nil
}

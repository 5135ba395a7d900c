// File: database/repository/faq/transaction.go
package faqRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"contour/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SwapOrder exchanges the order values of two FAQs. Both reads and both writes
// run inside one mongo transaction: there is no temporary sentinel round, and a
// crash mid-swap leaves both documents untouched.
func (r *MongoFaqRepo) SwapOrder(ctx context.Context, id1, id2 string) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		var faq1, faq2 models.Faq
		if err := r.coll.FindOne(sc, bson.M{"faqId": id1}).Decode(&faq1); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return ErrNotFound
			}
			return fmt.Errorf("fetch faq %s failed: %w", id1, err)
		}
		if err := r.coll.FindOne(sc, bson.M{"faqId": id2}).Decode(&faq2); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return ErrNotFound
			}
			return fmt.Errorf("fetch faq %s failed: %w", id2, err)
		}

		now := time.Now()
		if _, err := r.coll.UpdateOne(sc,
			bson.M{"faqId": id1},
			bson.M{"$set": bson.M{"order": faq2.Order, "updatedAt": now}},
		); err != nil {
			return fmt.Errorf("write order for faq %s failed: %w", id1, err)
		}
		if _, err := r.coll.UpdateOne(sc,
			bson.M{"faqId": id2},
			bson.M{"$set": bson.M{"order": faq1.Order, "updatedAt": now}},
		); err != nil {
			return fmt.Errorf("write order for faq %s failed: %w", id2, err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("faq order swap failed: %w", err)
	}

	return nil
}

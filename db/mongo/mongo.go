// Package mongo provide the optional MongoDB response cache for upstream
// structure and property lookups.
package mongo

import (
	"time"

	"gopkg.in/mgo.v2"
	"gopkg.in/mgo.v2/bson"

	conf "github.com/bazarkua/molexa/config"
	"github.com/bazarkua/molexa/model"
)

const (
	structuresCollection = "structures"
	propertiesCollection = "properties"

	// Cached upstream responses expire after a week; compound records are
	// effectively immutable but the cache should not grow without bound.
	cacheTTL = 7 * 24 * time.Hour
)

// Cache stores upstream responses keyed by compound id.
type Cache struct {
	session *mgo.Session
}

type structureDocument struct {
	CID       model.CID `bson:"_id"`
	Text      string    `bson:"text"`
	FetchedAt time.Time `bson:"fetchedAt"`
}

type propertiesDocument struct {
	CID        model.CID                `bson:"_id"`
	Properties model.CompoundProperties `bson:"properties"`
	FetchedAt  time.Time                `bson:"fetchedAt"`
}

// NewCache establish new MongoDB connection based on config.Config.
func NewCache(config *conf.Config) (*Cache, error) {
	session, dialErr := mgo.Dial(config.DbUrl)
	if dialErr != nil {
		return nil, dialErr
	}

	cache := &Cache{session: session}
	if configureErr := cache.configure(); configureErr != nil {
		session.Close()
		return nil, configureErr
	}
	return cache, nil
}

// Close the underlying session.
func (c *Cache) Close() {
	c.session.Close()
}

// GetStructure returns the cached structure text for a compound.
func (c *Cache) GetStructure(cid model.CID) (string, bool) {
	session := c.session.Copy()
	defer session.Close()

	document := structureDocument{}
	findErr := session.DB("").C(structuresCollection).FindId(cid).One(&document)
	if findErr != nil {
		return "", false
	}
	return document.Text, true
}

// PutStructure stores the structure text for a compound.
func (c *Cache) PutStructure(cid model.CID, text string) error {
	session := c.session.Copy()
	defer session.Close()

	_, upsertErr := session.DB("").C(structuresCollection).UpsertId(cid, structureDocument{
		CID:       cid,
		Text:      text,
		FetchedAt: time.Now(),
	})
	return upsertErr
}

// GetProperties returns the cached property records for a compound.
func (c *Cache) GetProperties(cid model.CID) (model.CompoundProperties, bool) {
	session := c.session.Copy()
	defer session.Close()

	document := propertiesDocument{}
	findErr := session.DB("").C(propertiesCollection).FindId(cid).One(&document)
	if findErr != nil {
		return model.CompoundProperties{}, false
	}
	return document.Properties, true
}

// PutProperties stores the property records for a compound.
func (c *Cache) PutProperties(cid model.CID, properties model.CompoundProperties) error {
	session := c.session.Copy()
	defer session.Close()

	_, upsertErr := session.DB("").C(propertiesCollection).UpsertId(cid, propertiesDocument{
		CID:        cid,
		Properties: properties,
		FetchedAt:  time.Now(),
	})
	return upsertErr
}

func (c *Cache) configure() error {
	index := mgo.Index{
		Key:         []string{"fetchedAt"},
		ExpireAfter: cacheTTL,
	}
	for _, name := range []string{structuresCollection, propertiesCollection} {
		if indexErr := c.session.DB("").C(name).EnsureIndex(index); indexErr != nil {
			return indexErr
		}
	}
	// Sanity query so a misconfigured url fails at startup, not first use.
	count, countErr := c.session.DB("").C(structuresCollection).Find(bson.M{}).Count()
	if countErr != nil {
		return countErr
	}
	log.Debugf("structure cache ready with %d entries", count)
	return nil
}

var log = conf.NamedLogger("mongo")

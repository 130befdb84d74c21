package scoring

import "github.com/gin-gonic/gin"

const clientKey = "scoring_client"

// SetClientToContext shares one client across handlers via the gin
// context. Use this middleware in the router setup.
func SetClientToContext(client *Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(clientKey, client)
		c.Next()
	}
}

func ClientInstance(c *gin.Context) *Client {
	v, ok := c.Get(clientKey)
	if !ok {
		return nil
	}
	client, _ := v.(*Client)
	return client
}
